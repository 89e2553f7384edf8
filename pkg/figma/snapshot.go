package figma

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSnapshot reads a previously saved file-API response from disk.
// Snapshots allow syncing without network access and power watch mode,
// where the snapshot file is re-read whenever it changes.
func LoadSnapshot(path string) (*FileResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", path, err)
	}

	var fileResp FileResponse
	if err := json.Unmarshal(data, &fileResp); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %q: %w", path, err)
	}
	return &fileResp, nil
}

// SaveSnapshot writes a file-API response to disk as indented JSON so it
// can be diffed and re-synced later via LoadSnapshot.
func SaveSnapshot(path string, fileResp *FileResponse) error {
	data, err := json.MarshalIndent(fileResp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", path, err)
	}
	return nil
}
