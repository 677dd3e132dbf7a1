// Command spawnpreview prints the deep-space content the journey would
// generate at the given zoom levels, using the same scene spec and seed as
// the game.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/spacezoom/ecs/entity"
	"github.com/milk9111/spacezoom/prefabs"
	"github.com/milk9111/spacezoom/procgen"
)

func main() {
	dir := flag.String("config", "prefabs", "directory whose scene.yaml overrides the embedded one")
	seed := flag.Int64("seed", 1, "random seed")
	zooms := flag.String("zoom", "50,100,200", "comma separated zoom levels")
	verbose := flag.Bool("v", false, "print every record")
	flag.Parse()

	prefabs.Dir = *dir
	spec, err := prefabs.LoadSceneSpec()
	if err != nil {
		log.Fatal(err)
	}
	levels, err := parseZooms(*zooms)
	if err != nil {
		log.Fatal(err)
	}

	set := procgen.NewSet(entity.ContentRules(spec), rand.New(rand.NewSource(*seed)))
	for _, z := range levels {
		preview(os.Stdout, set, z, *verbose)
	}
}

func parseZooms(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("zoom %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no zoom levels given")
	}
	return out, nil
}

func preview(w io.Writer, set *procgen.Set, zoom float64, verbose bool) {
	fmt.Fprintf(w, "zoom %.1f\n", zoom)
	for _, c := range procgen.Categories {
		sp := set.Spawner(c)
		recs, _ := sp.Records(zoom)
		fmt.Fprintf(w, "  %-10s bucket %-3d count %d\n", c, sp.Bucket(), len(recs))
		if !verbose {
			continue
		}
		for _, r := range recs {
			fmt.Fprintf(w, "    #%-3d pos (%7.1f %7.1f %7.1f) size %.2f scale %.2f\n",
				r.Index, r.Position[0], r.Position[1], r.Position[2], r.Size, r.Scale)
		}
	}
}
