// Command recipes searches TheMealDB from the terminal using the same fetch,
// normalize, deduplicate and sort pipeline as the desktop browser.
package main
