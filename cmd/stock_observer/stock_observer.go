package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/selectdb/stock_observer/pkg/market"
	"github.com/selectdb/stock_observer/pkg/utils"
	"github.com/selectdb/stock_observer/pkg/version"
	"github.com/selectdb/stock_observer/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
)

var printVersion bool

func init() {
	flag.BoolVar(&printVersion, "version", false, "The program's version")
}

func main() {
	flag.Parse()
	utils.InitLog()

	if printVersion {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	log.Infof("stock observer start, version: %s", version.GetVersion())

	if err := xmetrics.InitGlobal("stock-observer"); err != nil {
		log.Fatalf("init metrics failed: %+v", err)
	}

	// Step 1: list stocks, attach investors, move prices
	m := market.NewMarket()
	if err := m.Run(market.DefaultScenario(), os.Stdout); err != nil {
		log.Fatalf("run scenario failed: %+v", err)
	}
	log.Infof("final prices: %v", m.Snapshot())
	xmetrics.Dump()

	// Step 2: wait for user
	if err := waitForKey(os.Stdin); err != nil {
		log.Fatalf("wait for key failed: %+v", err)
	}
}
