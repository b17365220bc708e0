// Command quadpath decodes an occupancy map image, builds a grid or
// quadtree spatial index over it, runs A* between two pixel coordinates,
// and writes an annotated output image showing the index tiling and the
// resulting path.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/quadpath/quadpath/cell"
	"github.com/quadpath/quadpath/config"
	"github.com/quadpath/quadpath/grid"
	"github.com/quadpath/quadpath/imagemap"
	"github.com/quadpath/quadpath/pathfind"
	"github.com/quadpath/quadpath/quadtree"
	"github.com/quadpath/quadpath/render"
	"github.com/quadpath/quadpath/spatial"
	"github.com/quadpath/quadpath/trajectory"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file (optional; defaults apply)")
		inputPath  = flag.String("input", "", "path to the input occupancy map image (BMP or PNG)")
		outputPath = flag.String("output", "out.png", "path to write the annotated output image")
		index      = flag.String("index", "grid", "spatial index to build: grid or qtree")
		startX     = flag.Int("start-x", 0, "start pixel X")
		startY     = flag.Int("start-y", 0, "start pixel Y")
		endX       = flag.Int("end-x", 0, "end pixel X")
		endY       = flag.Int("end-y", 0, "end pixel Y")
		manhattan  = flag.Bool("manhattan", false, "use Manhattan distance instead of Euclidean")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("quadpath: -input is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("quadpath: failed to load configuration: %v", err)
	}

	m, err := decodeInput(*inputPath)
	if err != nil {
		log.Fatalf("quadpath: failed to decode input image: %v", err)
	}
	fmt.Printf("decoded %dx%d occupancy map from %s\n", m.Width(), m.Height(), *inputPath)

	metric := spatial.Euclidean
	if *manhattan {
		metric = spatial.Manhattan
	}

	idx, indexer, err := buildIndex(*index, m, cfg)
	if err != nil {
		log.Fatalf("quadpath: failed to build %s index: %v", *index, err)
	}

	result, err := pathfind.AStar(idx, *startX, *startY, *endX, *endY, metric)
	if err != nil {
		log.Fatalf("quadpath: pathfind failed: %v", err)
	}
	if !result.Found() {
		log.Printf("quadpath: no path found between (%d,%d) and (%d,%d); visited %d cells", *startX, *startY, *endX, *endY, result.VisitedLength())
	} else {
		log.Printf("quadpath: found path of %d cells, cost %.2f", result.PathLength(), result.Cost)
	}

	traj := trajectory.Build(idx, result, *startX, *startY, *endX, *endY, cfg.Path.EnableSmoothing)
	if traj.Found() {
		log.Printf("quadpath: trajectory length %.2f over %d points", traj.Length, len(traj.Points))
	}

	img := render.Draw(indexer, m.Width(), m.Height(), result.Path, render.DefaultColors())
	out, err := os.Create(*outputPath)
	if err != nil {
		log.Fatalf("quadpath: failed to create output file: %v", err)
	}
	defer out.Close()

	if err := render.Encode(out, img); err != nil {
		log.Fatalf("quadpath: failed to encode output image: %v", err)
	}
	fmt.Printf("wrote annotated map to %s\n", *outputPath)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func decodeInput(path string) (cell.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imagemap.Decode(f)
}

func buildIndex(kind string, m cell.Matrix, cfg *config.Config) (spatial.Index, render.Indexer, error) {
	passable := cfg.Color.PassableRGB()
	blocked := cfg.Color.BlockedRGB()

	switch kind {
	case "qtree":
		opts := quadtree.Options{
			MinSize:       cfg.QTree.MinSize,
			AllowDiagonal: cfg.Path.AllowDiagonal,
			Passable:      passable,
			Blocked:       blocked,
		}
		q, err := quadtree.Build(m, 0, 0, m.Width(), m.Height(), opts)
		if err != nil {
			return nil, nil, err
		}
		return q, q, nil
	default:
		opts := grid.Options{
			CellSize:      cfg.Grid.CellSize,
			AllowDiagonal: cfg.Path.AllowDiagonal,
			Passable:      passable,
			Blocked:       blocked,
		}
		g, err := grid.Build(m, opts)
		if err != nil {
			return nil, nil, err
		}
		return g, g, nil
	}
}
