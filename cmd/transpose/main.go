// Command transpose encrypts and decrypts files with classical block
// transposition ciphers and prints n-gram frequency tables.
//
//	transpose list
//	transpose encrypt -c zigzag -k 5x4 plain.txt cipher.txt
//	transpose decrypt -c zigzag -k 5x4 cipher.txt plain.txt
//	transpose dist -d tri cipher.txt -
//	transpose show -c stencil
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
