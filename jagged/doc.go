// Package jagged implements vectors stored as variable-length lists of
// records per event, the layout of particle collections in collider data.
//
// All coordinate and payload fields share one offsets slice over flat
// content. Columnar operands broadcast one value per event, object operands
// broadcast everywhere, and jagged operands must share offsets.
package jagged
