package stream

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"
	"hash/crc32"
	"strings"
)

// ChecksumAlgo names one of the digest algorithms the S3 engine can attach
// to a PUT. It is string-backed and parsed case-insensitively, the way
// AIStore's own cos.Cksum parses checksum-type strings.
//
// CRC32C and the other digests all come from the standard library
// (hash/crc32 with the Castagnoli polynomial table, crypto/md5,
// crypto/sha1, crypto/sha256): no third-party checksum package appears
// anywhere in the retrieved pack, and AIStore's own object-checksum
// type (cmn/objattrs.go's cos.Cksum) likewise sits directly on Go's
// standard hash.Hash interfaces rather than an external library. See
// DESIGN.md.
type ChecksumAlgo string

const (
	ChecksumMD5    ChecksumAlgo = "md5"
	ChecksumCRC32  ChecksumAlgo = "crc32"
	ChecksumCRC32C ChecksumAlgo = "crc32c"
	ChecksumSHA1   ChecksumAlgo = "sha1"
	ChecksumSHA256 ChecksumAlgo = "sha2"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// ParseChecksumAlgo validates and normalizes an operator-supplied
// checksum-algorithm name.
func ParseChecksumAlgo(s string) (ChecksumAlgo, error) {
	switch strings.ToLower(s) {
	case string(ChecksumMD5):
		return ChecksumMD5, nil
	case string(ChecksumCRC32):
		return ChecksumCRC32, nil
	case string(ChecksumCRC32C):
		return ChecksumCRC32C, nil
	case string(ChecksumSHA1):
		return ChecksumSHA1, nil
	case "sha2", "sha256":
		return ChecksumSHA256, nil
	default:
		return "", fmt.Errorf("invalid checksum algorithm %q", s)
	}
}

// Header is the S3-compatible request header this algorithm's digest is
// carried in.
func (a ChecksumAlgo) Header() string {
	switch a {
	case ChecksumMD5:
		return "Content-MD5"
	case ChecksumCRC32:
		return "x-amz-checksum-crc32"
	case ChecksumCRC32C:
		return "x-amz-checksum-crc32c"
	case ChecksumSHA1:
		return "x-amz-checksum-sha1"
	case ChecksumSHA256:
		return "x-amz-checksum-sha256"
	default:
		return ""
	}
}

func (a ChecksumAlgo) newHasher() hash.Hash {
	switch a {
	case ChecksumMD5:
		return md5.New()
	case ChecksumCRC32:
		return crc32.NewIEEE()
	case ChecksumCRC32C:
		return crc32.New(crc32cTable)
	case ChecksumSHA1:
		return sha1.New()
	case ChecksumSHA256:
		return sha256.New()
	default:
		panic("stream: unknown checksum algorithm " + string(a))
	}
}

// Digest computes the hex digest of buf under this algorithm.
func (a ChecksumAlgo) Digest(buf []byte) string {
	h := a.newHasher()
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
