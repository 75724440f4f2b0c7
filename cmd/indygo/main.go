package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/sbca/libindy-go/pkg/indy"
)

// Well-known entry points probed to gauge what the installed library
// supports.
var probes = []string{
	"indy_create_wallet",
	"indy_open_wallet",
	"indy_close_wallet",
	"indy_delete_wallet",
	"indy_create_and_store_my_did",
	"indy_crypto_sign",
	"indy_crypto_verify",
	"indy_create_pool_ledger_config",
	"indy_open_pool_ledger",
	"indy_submit_request",
}

func main() {
	log.Printf("libindy-go version: %s", indy.WrapperVersion())

	rt, err := indy.Open()
	if err != nil {
		if errors.Is(err, indy.ErrLoadFailed) {
			fmt.Printf("library unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening library: %v", err)
	}

	if err := rt.Initialize(indy.DefaultRuntimeConfig()); err != nil {
		log.Fatalf("initialize: %v", err)
	}
	fmt.Println("library loaded and initialized")

	for _, name := range probes {
		status := "missing"
		if rt.Implements(name) {
			status = "ok"
		}
		fmt.Printf("  %-32s %s\n", name, status)
	}
}
