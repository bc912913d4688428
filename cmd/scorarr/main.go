// Command scorarr scores, ranks, and explains media releases against
// quality profiles from the command line.
package main

func main() {
	Execute()
}
