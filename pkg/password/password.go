/*
Copyright © 2025 dibend

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

// Package password generates random passwords from a filtered character set
// using the operating system's CSPRNG.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Generate returns a password of the requested length. Each character is
// drawn independently and uniformly from the character set, so no position
// is biased.
func Generate(length int, noSymbols bool) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	charset := letters + digits
	if !noSymbols {
		charset += symbols
	}

	var b strings.Builder
	b.Grow(length)
	max := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		b.WriteByte(charset[n.Int64()])
	}

	return b.String(), nil
}
