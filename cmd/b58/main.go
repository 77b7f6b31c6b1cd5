package main

import (
	"flag"
	"os"

	"github.com/treeforest/bitcoinutils/config"
	"github.com/treeforest/bitcoinutils/internal/client"
	log "github.com/treeforest/logger"
)

func main() {
	path := flag.String("conf", "", "config path, default config is used when empty")
	flag.Parse()

	conf := config.DefaultConfig()
	if *path != "" {
		var err error
		conf, err = config.Load(*path)
		if err != nil {
			log.Fatalf("load config failed: %+v", err)
		}
	}
	if conf.Debug {
		log.SetLevel(log.DEBUG)
		data, _ := conf.Marshal()
		log.Debug("config:\n", string(data))
	}

	err := client.New(conf, os.Stdout).Run(flag.Args())
	if err == client.ErrUsage {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
