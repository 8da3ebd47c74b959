package engine

import "strconv"

// arbitraryRadixNumber is an odometer: a fixed-width number in a given
// radix, incremented one step at a time with carry. UriProvider uses one
// digit per directory level so that, e.g., depth=2 branch=16 walks
// 0/0, 0/1, ... 0/15, 1/0, ... 15/15 before wrapping back to 0/0.
type arbitraryRadixNumber struct {
	digits []int
	radix  int
}

func newArbitraryRadixNumber(numDigits, radix int) *arbitraryRadixNumber {
	return &arbitraryRadixNumber{digits: make([]int, numDigits), radix: radix}
}

func (n *arbitraryRadixNumber) increment() {
	for i := len(n.digits) - 1; i >= 0; i-- {
		n.digits[i] = (n.digits[i] + 1) % n.radix
		if n.digits[i] != 0 || i == 0 {
			break
		}
	}
}

// UriProvider generates the URIs an S3 engine issues PUTs and GETs
// against, optionally spreading objects across a tree of directory
// prefixes so a run can stress implementations that pay a cost per
// directory. Not safe for concurrent use; each connection owns one.
type UriProvider struct {
	base            string
	bucket          string
	objPrefix       string
	numObjsPerDir   int
	objCount        int
	radixNum        *arbitraryRadixNumber
}

// NewUriProvider builds a provider rooted at uriBase/bucket. depth is the
// number of directory levels to generate (0 means objects sit directly
// under the bucket); numObjs is how many object keys share one directory
// before the directory prefix advances; branchPerDepth is the radix of
// each directory level (how many siblings exist at each level).
func NewUriProvider(uriBase, bucket, objPrefix string, depth, numObjs, branchPerDepth int) *UriProvider {
	var radixNum *arbitraryRadixNumber
	if depth > 0 {
		radixNum = newArbitraryRadixNumber(depth, branchPerDepth)
	}
	return &UriProvider{
		base:          uriBase,
		bucket:        bucket,
		objPrefix:     objPrefix,
		numObjsPerDir: numObjs,
		radixNum:      radixNum,
	}
}

// Next returns the next URI in sequence, advancing the provider's internal
// object and directory counters.
func (p *UriProvider) Next() string {
	dirPrefix := ""
	if p.radixNum != nil {
		for _, d := range p.radixNum.digits {
			dirPrefix += strconv.Itoa(d) + "/"
		}
	}

	uri := p.base + "/" + p.bucket + "/" + dirPrefix + p.objPrefix + strconv.Itoa(p.objCount)

	p.objCount = (p.objCount + 1) % p.numObjsPerDir
	if p.objCount == 0 && p.radixNum != nil {
		p.radixNum.increment()
	}

	return uri
}

// Clone returns an independent copy of the provider's current state, used
// by tests that need a second, lock-step provider to compute expectations.
func (p *UriProvider) Clone() *UriProvider {
	c := &UriProvider{
		base:          p.base,
		bucket:        p.bucket,
		objPrefix:     p.objPrefix,
		numObjsPerDir: p.numObjsPerDir,
		objCount:      p.objCount,
	}
	if p.radixNum != nil {
		digits := make([]int, len(p.radixNum.digits))
		copy(digits, p.radixNum.digits)
		c.radixNum = &arbitraryRadixNumber{digits: digits, radix: p.radixNum.radix}
	}
	return c
}
