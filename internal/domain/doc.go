// Package domain models the Swedish avalanche forecast published on
// lavinprognoser.se.
//
// # Data Source
//
// Each forecast area has a page at
//
//	http://www.lavinprognoser.se/oversikt-alla-omraden/<slug>/prognos/
//
// which shows the latest published forecast. Older or upcoming forecasts are
// selected with the forecastdate query parameter, formatted as year, month and
// day without zero padding:
//
//	.../kebnekaisefjallen/prognos/?forecastdate=2023-3-1
//
// # Geometry Encoding
//
// The page draws hazard attributes as SVG widgets rather than text, so the
// values have to be recovered from the geometry.
//
// Gauges ("SizeMeter"):
//
//	A needle is rotated around the pivot (143, 104). The first needle is the
//	probability gauge, the second the size gauge:
//
//	  angle   probability       size
//	  5       Osannolikt        Små
//	  40      Möjligt           -
//	  85      Troligt           Stora
//	  130     Mycket troligt    -
//	  165     Utan tvivel       Mycket stora
//
// Compass rose ("DirectionMeter"):
//
//	Eight polygons, one per compass point, each identified by its vertex
//	list. Highlighted sectors are emitted in the opposite order to how they
//	are read out, so callers reverse the decoded list.
//
// Altitude diagram ("AltitudeMeter"):
//
//	Three stacked polygons for kalfjäll (alpine), trädgräns (treeline) and
//	under trädgränsen (below treeline).
//
// Vertex lists and rotations are compared as literal text. A value that is
// not in the tables decodes to nothing and is left out of the report.
package domain
