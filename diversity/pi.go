// Copyright ©2024 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diversity

// allele is a genotype value and the number of times it was called.
type allele struct {
	value string
	count int
}

// before returns whether a ranks above b. Higher counts rank first and
// equal counts are ordered by value.
func (a allele) before(b allele) bool {
	if a.count != b.count {
		return a.count > b.count
	}
	return a.value < b.value
}

// SitePi returns the expected heterozygosity of a site, 2·p·q, where p
// and q are the frequencies of the two most frequently called genotype
// values among all calls. Only the two most frequent values contribute
// when more than two are present. Sites with fewer than two calls have
// a pi of zero. The number of calls is returned as called.
func SitePi(calls []string) (pi float64, called int) {
	called = len(calls)
	if called < 2 {
		return 0, called
	}
	counts := make(map[string]int)
	for _, g := range calls {
		counts[g]++
	}
	var major, minor allele
	for v, n := range counts {
		a := allele{value: v, count: n}
		switch {
		case a.before(major):
			major, minor = a, major
		case a.before(minor):
			minor = a
		}
	}
	p := float64(major.count) / float64(called)
	q := float64(minor.count) / float64(called)
	return 2 * p * q, called
}
