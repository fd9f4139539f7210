package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/polyprops/geometry"
)

// Computes area and centroid for polygons. Input on stdin should be newline
// separated points in the form "x y", with each polygon separated by an extra
// newline; alternatively --svg takes every <polygon> element from an SVG
// file.
//
// Polygons should be simple and wind consistently. Neither requirement is
// validated.
var (
	svgPath   = kingpin.Flag("svg", "Read polygons from the <polygon> elements of an SVG file instead of stdin.").String()
	drawPath  = kingpin.Flag("draw", "Render the first polygon, centroid marked, to this PNG file.").String()
	display   = kingpin.Flag("display", "Also cat the rendered PNG to the terminal (iTerm2-style).").Bool()
	scale     = kingpin.Flag("scale", "Pixels per coordinate unit when rendering.").Default("10").Float64()
	precision = kingpin.Flag("precision", "Digits after the decimal point in results.").Default("6").Int()
)

func main() {
	kingpin.Parse()
	petname.NonDeterministicMode()

	var polygons []*geometry.Polygon
	var err error
	if *svgPath != "" {
		polygons, err = readSVGPolygons(*svgPath)
	} else {
		polygons, err = readPolygons(os.Stdin)
	}
	if err != nil {
		log.Fatalf("Could not read polygons: %v", err)
	}
	if len(polygons) == 0 {
		log.Fatal("No polygons given")
	}

	for _, poly := range polygons {
		printProperties(poly)
	}

	if *drawPath != "" {
		var out io.Writer
		if *display {
			out = os.Stdout
		}
		if err := polygons[0].Draw(*drawPath, *scale, out); err != nil {
			log.Fatalf("Could not render %q: %v", *drawPath, err)
		}
	}
}

func printProperties(poly *geometry.Polygon) {
	label := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	winding := "clockwise"
	if poly.IsCounterClockwise() {
		winding = "counter-clockwise"
	}
	fmt.Printf("%s: %d vertices, %s\n", aurora.Bold(label), poly.Len(), winding)
	fmt.Printf("  area: %s\n", aurora.Green(strconv.FormatFloat(poly.Area(), 'f', *precision, 64)))

	centroid, err := poly.Centroid()
	if err != nil {
		fmt.Printf("  centroid: %s\n", aurora.Red(err.Error()))
		return
	}
	fmt.Printf("  centroid: %s\n",
		aurora.Green(fmt.Sprintf("(%.*f, %.*f)", *precision, centroid.X, *precision, centroid.Y)))
}

func readPolygons(in *os.File) ([]*geometry.Polygon, error) {
	polygons := []*geometry.Polygon{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	coords := []float64{}
	flush := func() error {
		if len(coords) == 0 {
			return nil
		}
		poly, err := geometry.NewPolygon(coords)
		if err != nil {
			return err
		}
		polygons = append(polygons, poly)
		coords = []float64{}
		return nil
	}
	for scanner.Scan() {
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		x, y, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		coords = append(coords, x, y)
	}

	// Handle trailing polygon if any
	if err := flush(); err != nil {
		return nil, err
	}
	return polygons, scanner.Err()
}

func parsePoint(line string) (x, y float64, err error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected a point in the form \"x y\", got %q", line)
	}
	x, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, err
	}
	y, err = strconv.ParseFloat(parts[1], 64)
	return x, y, err
}

func readSVGPolygons(path string) ([]*geometry.Polygon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		return nil, err
	}

	polygons := []*geometry.Polygon{}
	for _, polygonEl := range rootEl.FindAll("polygon") {
		points := []geometry.Point{}
		for _, pointString := range strings.Fields(polygonEl.Attributes["points"]) {
			pair := strings.Split(pointString, ",")
			if len(pair) != 2 {
				return nil, fmt.Errorf("invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(pair[0], 64)
			if err != nil {
				return nil, err
			}
			y, err := strconv.ParseFloat(pair[1], 64)
			if err != nil {
				return nil, err
			}
			points = append(points, geometry.Point{X: x, Y: y})
		}
		poly, err := geometry.NewPolygonFromPoints(points)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, poly)
	}
	return polygons, nil
}
