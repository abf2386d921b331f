// Package partition holds the grid-partition representation used to evolve
// images in the style of geometric abstract art, and its genetic operators.
//
// A canvas is cut by vertical and horizontal lines into rectangular cells,
// each painted with one palette color. A line is not necessarily drawn from
// end to end: its Runs list the indices of the perpendicular lines where it
// toggles between hidden and visible. The operators (Generator, Mutator,
// Crossover) only ever produce individuals whose run indices stay inside the
// perpendicular line list and whose cell count matches the line counts.
//
// Every operator takes its *rand.Rand explicitly, none keeps state between
// calls. Mutate changes its argument in place, the others return new
// individuals.
package partition
