// Package huffpack implements a byte-oriented Huffman compressor whose
// output frames describe themselves.  Each frame carries the code table
// that produced it, so a frame can be unpacked with no shared state
// beyond this package.
//
// Frame layout, all integers big-endian:
//
//     byte 0        count of padding bits in the final data byte, 0..7
//     bytes 1..2    number of code table records, N
//     4N bytes      records: symbol, code bit length, 16-bit codeword
//     remainder     packed data, codewords MSB-first
//
// Codewords follow the convention that a left branch of the code tree is
// bit 1 and a right branch is bit 0.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
