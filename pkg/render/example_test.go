package render_test

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/dotmark/pkg/render"
)

func ExampleNameFor() {
	fmt.Println(render.NameFor(render.PluginName, "digraph G { a -> b }"))
	// Output:
	// 59e090e79660f2677e2f9c3d86ce0367bb225526.svg
}

func ExampleRenderer_Render() {
	dir, _ := os.MkdirTemp("", "graphs")
	defer os.RemoveAll(dir)

	r := render.New()
	link, err := r.Render(context.Background(), dir, "digraph G { a -> b }", render.EngineDot)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(link)
	// Output:
	// ./59e090e79660f2677e2f9c3d86ce0367bb225526.svg
}
