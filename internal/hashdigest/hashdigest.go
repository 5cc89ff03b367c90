// Package hashdigest dispatches a candidate password to one of the
// thirteen supported hash algorithms and returns its lowercase hex
// digest.
package hashdigest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"

	"github.com/jzelinskie/whirlpool"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/XenorInspire/worgenx/internal/werrors"
)

// Algorithm identifies one of the supported hash functions by the name
// accepted on the command line. The zero value, None, means "do not
// hash" and is used when the --hash flag is omitted.
type Algorithm string

// Supported algorithm names, matching the CLI's --hash values.
const (
	None       Algorithm = ""
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA3224    Algorithm = "sha3-224"
	SHA3256    Algorithm = "sha3-256"
	SHA3384    Algorithm = "sha3-384"
	SHA3512    Algorithm = "sha3-512"
	Blake2b512 Algorithm = "blake2b-512"
	Blake2s256 Algorithm = "blake2s-256"
	Whirlpool  Algorithm = "whirlpool"
)

var constructors = map[Algorithm]func() hash.Hash{
	MD5:        md5.New,
	SHA1:       sha1.New,
	SHA224:     sha256.New224,
	SHA256:     sha256.New,
	SHA384:     sha512.New384,
	SHA512:     sha512.New,
	SHA3224:    sha3.New224,
	SHA3256:    sha3.New256,
	SHA3384:    sha3.New384,
	SHA3512:    sha3.New512,
	Blake2b512: newBlake2b512,
	Blake2s256: newBlake2s256,
	Whirlpool:  whirlpool.New,
}

func newBlake2s256() hash.Hash {
	h, _ := blake2s.New256(nil)
	return h
}

func newBlake2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

// Parse validates a hash algorithm name, returning
// werrors.UnsupportedHashAlgorithmError for anything unrecognized. The
// empty string is accepted and maps to None.
func Parse(name string) (Algorithm, error) {
	if name == "" {
		return None, nil
	}

	algo := Algorithm(name)
	if _, ok := constructors[algo]; !ok {
		return "", &werrors.UnsupportedHashAlgorithmError{Name: name}
	}

	return algo, nil
}

// Digest hashes data with algo and returns the lowercase hex digest.
// Digest(None, data) is invalid and returns an error; callers should
// branch on Algorithm == None before calling Digest.
func Digest(algo Algorithm, data []byte) (string, error) {
	newHash, ok := constructors[algo]
	if !ok {
		return "", &werrors.UnsupportedHashAlgorithmError{Name: string(algo)}
	}

	h := newHash()
	h.Write(data)

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Names returns every supported algorithm name, in a stable order
// matching spec's enumeration, for use in CLI help text.
func Names() []string {
	return []string{
		string(MD5), string(SHA1), string(SHA224), string(SHA256), string(SHA384), string(SHA512),
		string(SHA3224), string(SHA3256), string(SHA3384), string(SHA3512),
		string(Blake2b512), string(Blake2s256), string(Whirlpool),
	}
}
