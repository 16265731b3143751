// Command searchengine is the default binary: `searchengine crawl` indexes a
// seed URL, `searchengine serve` starts the query console.
package main

import "github.com/frejajensen9/web-based-search-engine-24/cmd"

func main() {
	cmd.Execute()
}
