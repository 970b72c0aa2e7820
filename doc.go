// Pointplot loads coordinate data and plots it.
//
// # Input Format
//
// Input is plain text, one point per line, the coordinates of a point
// separated by commas:
//
//	1,2,3
//	4,5,6
//
// There is no header row and no quoting. Whitespace around the whole
// content is ignored. The number of coordinates per line is fixed by the
// column names handed to Load; a line with a different number of fields
// is an error.
//
// # Tables
//
// A loaded file is a Table: an ordered list of Records (one per line,
// in file order) together with one column name per coordinate. Tables
// are immutable: the constructors copy what they are given and all
// accessors hand out copies.
//
// # Rendering
//
// Drawing is done by a Renderer. The renderers in the subpackages geom
// (image files via gonum/plot), gnuplot (interactive window) and term
// (terminal) all start from the Layout computed by Prepare which
// projects 3D data, trains the scales and turns the rows into grobs.
package pointplot
