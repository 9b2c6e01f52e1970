package badge_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/badges/pkg/badge"
	"github.com/matzehuels/badges/pkg/measure"
)

func ExampleParseColor() {
	c, err := badge.ParseColor("#ABC")
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Hex())

	_, err = badge.ParseColor("blue")
	fmt.Println(err)
	// Output:
	// #aabbcc
	// invalid color value: blue
}

func ExampleRenderer_Layout() {
	r := badge.NewRenderer(measure.Heuristic{})
	l := r.Layout(badge.New().WithLabel("build").WithMessage("passing"))

	fmt.Println(l.Left.Width, l.Right.Width, l.Width)
	fmt.Println(l.Left.TextX(), l.Right.TextX())
	// Output:
	// 56 72 128
	// 28 92
}

func ExampleRenderer_Render() {
	r := badge.NewRenderer(measure.Heuristic{})
	svg, err := r.Render(badge.New().
		WithStyle(badge.FlatSquare).
		WithLabel("build").
		WithMessage("passing").
		WithMessageColor(badge.Green))
	if err != nil {
		panic(err)
	}
	fmt.Println(strings.SplitN(svg, "\n", 2)[0])
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="128" height="20">
}
