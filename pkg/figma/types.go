package figma

// Version of the figma-theme-sync module.
const Version = "0.2.0"

// FileResponse represents the response from the Figma file API endpoint.
// It contains the file metadata and the full document tree.
type FileResponse struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint
// when fetching specific nodes. It maps node IDs to their NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a requested node with its document subtree.
type NodeData struct {
	Document Node `json:"document"`
}

// Node is a single element in the Figma document tree: a frame, group,
// shape, or any other canvas object. The tree is read-only input; nothing
// here is mutated after decoding.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Children []Node  `json:"children,omitempty"`
	Fills    []Paint `json:"fills,omitempty"`
	Strokes  []Paint `json:"strokes,omitempty"`
}

// Paint represents a fill or stroke applied to a node. Only SOLID paints
// carry a Color; gradient and image paints leave it nil.
type Paint struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Color   *Color  `json:"color,omitempty"`
}

// Color is an RGBA color with float channels in the [0, 1] range, as the
// Figma API delivers them. Channels are converted to 0-255 integers before
// any CSS value is emitted.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}
