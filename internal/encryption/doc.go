// Package encryption encrypts and decrypts files with BKSQ Encrypt-then-MAC envelopes.
// Files are processed concurrently and written atomically.
//
// An envelope is a 6-byte header ("BKSQ", version, flags), the 6-byte nonce, the counter-mode
// ciphertext and the 12-byte tag. Plaintexts must be a whole number of 12-byte blocks; no padding
// is applied.
package encryption
