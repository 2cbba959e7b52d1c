package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"voxcast/internal/config"
	"voxcast/internal/export"
	"voxcast/internal/heightmap"
	"voxcast/internal/scene"
	"voxcast/internal/snapshot"
)

func main() {
	configFile := flag.String("config", "", "Path to scene JSON file (default: built-in demo scene)")
	output := flag.String("output", "scene.glb", "Output .glb file, or directory for -vxs")
	vxs := flag.Bool("vxs", false, "Write one .vxs snapshot per volume instead of a .glb")

	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})

	sc, err := scene.Build(cfg, heightmap.NewCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	if !*vxs {
		if err := export.SaveGLB(*output, sc.Volumes, sc.Names); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d volumes)\n", *output, len(sc.Volumes))
		return
	}

	if err := os.MkdirAll(*output, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for i, v := range sc.Volumes {
		path := filepath.Join(*output, sc.Names[i]+".vxs")
		if err := snapshot.Save(path, v); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %s: %v cells, %d occupied\n", path, v.Size(), v.Count())
	}
}
