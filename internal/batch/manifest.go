package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"voxcast/internal/mathutil"
)

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame    int        `json:"frame"`
	Image    string     `json:"image"`
	Position [3]float32 `json:"position"`
	YawDeg   float32    `json:"yaw_deg"`
	PitchDeg float32    `json:"pitch_deg"`
}

// WriteManifest writes the successful frames of results to path as JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:    r.Frame,
			Image:    r.Image,
			Position: r.Camera.Position,
			YawDeg:   mathutil.Rad2Deg(r.Camera.Yaw),
			PitchDeg: mathutil.Rad2Deg(r.Camera.Pitch),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
