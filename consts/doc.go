// Package consts defines module-wide constants, primarily character sets
// used for identifier generation.
//
// # Character Sets
//
// Predefined character sets:
//
//	consts.Number        // "0123456789"
//	consts.NumLowerUpper // digits + lowercase + uppercase
//	consts.PrimaryKey    // alphabet used for record keys
//
// The PrimaryKey alphabet and PrimaryKeySize pair with the nanoid package
// to mint collision-resistant record identifiers that double as cursor keys.
package consts
