// Package aes is a table-driven software implementation of the FIPS-197 block cipher
// for 128, 192 and 256-bit keys.
//
// A key is expanded once into a Schedule of Nr+1 round keys, which is read-only afterwards
// and can be shared between goroutines. EncryptBlock and DecryptBlock transform a single
// State with a Schedule; Cipher wraps both behind crypto/cipher.Block.
//
// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf
//
// There is no constant-time guarantee and no hardware acceleration: S-box lookups are indexed
// by secret data.
package aes
