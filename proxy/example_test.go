package proxy_test

import (
	"os"

	"github.com/katalvlaran/patterns/proxy"
)

func Example() {
	image1 := proxy.NewProxyImage("PNG_IMG123.png", os.Stdout)
	image2 := proxy.NewProxyImage("PNG_IMG1234.png", os.Stdout)

	_ = image1.Display(os.Stdout)
	_ = image1.Display(os.Stdout)
	_ = image2.Display(os.Stdout)

	// Output:
	// Delegating call through proxy to real image.
	// Loading PNG_IMG123.png...
	// Displaying image through real image: PNG_IMG123.png
	// Delegating call through proxy to real image.
	// Displaying image through real image: PNG_IMG123.png
	// Delegating call through proxy to real image.
	// Loading PNG_IMG1234.png...
	// Displaying image through real image: PNG_IMG1234.png
}
