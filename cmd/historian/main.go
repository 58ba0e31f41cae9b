// Command historian runs a standalone proof-of-history log.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tolelom/pohlog/archive"
	"github.com/tolelom/pohlog/bus"
	"github.com/tolelom/pohlog/config"
	"github.com/tolelom/pohlog/poh"
	"github.com/tolelom/pohlog/wallet"
	"github.com/tolelom/pohlog/wallet/keystore"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to config file")
	keyPath := flag.String("key", "historian.key", "path to keystore file")
	genKey := flag.Bool("genkey", false, "generate a new signing key and exit")
	flag.Parse()

	// Read keystore password from environment (not CLI flags — they leak via ps).
	password := os.Getenv("POHLOG_PASSWORD")
	if password == "" {
		log.Println("WARNING: POHLOG_PASSWORD not set — keystore will use an empty password")
	}

	// ---- generate key mode ----
	if *genKey {
		w, err := wallet.Generate()
		if err != nil {
			log.Fatal(err)
		}
		if err := keystore.Save(*keyPath, password, w.Signer()); err != nil {
			log.Fatal(err)
		}
		pub := w.PublicKey()
		fmt.Printf("Generated key. Public key: %x\n", pub[:])
		fmt.Printf("Saved to: %s\n", *keyPath)
		return
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	startHash, err := cfg.Hash()
	if err != nil {
		log.Fatalf("start hash: %v", err)
	}

	w, err := loadOrGenerateWallet(*keyPath, password)
	if err != nil {
		log.Fatalf("wallet: %v", err)
	}
	pub := w.PublicKey()
	log.Printf("Signing as %x", pub[:])

	ar, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer ar.Close()

	b := bus.New()
	b.Subscribe(bus.KindTick, func(e poh.Entry) {
		log.Printf("tick: num_hashes=%d end_hash=%s", e.NumHashes, e.EndHash)
	})
	b.Subscribe(bus.KindClaim, func(e poh.Entry) {
		log.Printf("claim: end_hash=%s", e.EndHash)
	})
	b.Subscribe(bus.KindTransaction, func(e poh.Entry) {
		log.Printf("transaction: end_hash=%s", e.EndHash)
	})

	hist := poh.NewHistorian(startHash, cfg.TickInterval())

	// Fan the historian's single output channel out to both the archive
	// and the bus: each needs its own copy of every entry, so a shared
	// channel (where each entry goes to only one reader) won't do.
	toArchive := make(chan poh.Entry, 128)
	toBus := make(chan poh.Entry, 128)
	archiveDone := make(chan struct{})
	go func() {
		defer close(archiveDone)
		ar.Run(toArchive)
	}()
	pumpDone := b.Pump(toBus)
	go func() {
		for e := range hist.Entries() {
			toArchive <- e
			toBus <- e
		}
		close(toArchive)
		close(toBus)
	}()

	log.Printf("Historian running from start hash %s", startHash)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutting down...")

	hist.Close()
	<-pumpDone
	<-archiveDone
	log.Println("Shutdown complete.")
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file not found at %s, using defaults.", path)
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func loadOrGenerateWallet(keyPath, password string) (*wallet.Wallet, error) {
	s, err := keystore.Load(keyPath, password)
	if err == nil {
		return wallet.New(s), nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	w, err := wallet.Generate()
	if err != nil {
		return nil, err
	}
	if err := keystore.Save(keyPath, password, w.Signer()); err != nil {
		return nil, err
	}
	log.Printf("No keystore found at %s, generated a new one.", keyPath)
	return w, nil
}
