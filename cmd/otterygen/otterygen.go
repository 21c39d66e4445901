// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// otterygen emits cryptographically secure random values: raw bytes as hex
// or base64, uniform integers below a limit, or random strings over a rune
// set.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/otterysec/ottery"
)

// base64Runes are all the characters allowed in standard and url safe
// base64 encodings, a common safe alphabet for random identifiers.
const base64Runes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz0123456789-_"

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

type config struct {
	Bytes  uint   `short:"n" long:"bytes" description:"number of random bytes to emit"`
	Base64 bool   `short:"b" long:"base64" description:"encode bytes with base64 instead of hex"`
	Below  uint64 `short:"m" long:"below" description:"emit a uniform random integer in [0,N)"`
	String uint   `short:"s" long:"string" description:"emit a random string of this many characters"`
	Runes  string `short:"r" long:"runes" description:"alphabet for -s (default: base64 characters)"`
}

func main() {
	cfg := config{
		Bytes: 32,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS]"
	_, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	switch {
	case cfg.Below > 0:
		fmt.Println(ottery.Uint64N(cfg.Below))

	case cfg.String > 0:
		runes := []rune(cfg.Runes)
		if len(runes) == 0 {
			runes = []rune(base64Runes)
		}
		s := make([]rune, cfg.String)
		for i := range s {
			s[i] = runes[ottery.IntN(len(runes))]
		}
		fmt.Println(string(s))

	default:
		if cfg.Bytes == 0 {
			fatalf("nothing to generate\n")
		}
		b := ottery.Bytes(int(cfg.Bytes))
		if cfg.Base64 {
			fmt.Println(base64.StdEncoding.EncodeToString(b))
			return
		}
		fmt.Println(hex.EncodeToString(b))
	}
}
