package main

import (
	"fmt"
	"log"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/pipe01/errat"
	commonlogback "github.com/pipe01/errat/backend/commonlog"
	zapback "github.com/pipe01/errat/backend/zap"
	"github.com/pipe01/errat/internal/demo"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var backendNames = []string{"commonlog", "zap", "none"}

var (
	backendName = kingpin.Flag("backend", "Backend that receives the created errors (commonlog, zap or none)").Short('b').Default("commonlog").String()
	verbosity   = kingpin.Flag("verbose", "Increase logging verbosity").Short('v').Counter()
)

func main() {
	kingpin.Parse()

	if !slices.Contains(backendNames, *backendName) {
		kingpin.Fatalf("unknown backend %q, expected one of %v", *backendName, backendNames)
	}

	if err := configureBackend(*backendName); err != nil {
		kingpin.Fatalf("configure backend: %s", err)
	}

	basicUsage()
	realWorldScenario()

	// the commonlog simple backend buffers stderr and only flushes
	// through the kutil exit hooks
	util.Exit(0)
}

func configureBackend(name string) error {
	switch name {
	case "commonlog":
		commonlog.Configure(*verbosity, nil)
		errat.SetBackend(commonlogback.New("errat"))

	case "zap":
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create zap logger: %w", err)
		}

		errat.SetBackend(zapback.New(logger))

	case "none":
		// Errors still carry their location, they just aren't logged
		// anywhere.
	}

	return nil
}

func basicUsage() {
	log.Println("creating an error without automatic logging")
	err := errat.New("this error is not logged automatically")
	fmt.Println(color.HiRedString("got: %s", err))

	log.Println("creating an error with automatic logging")
	errat.NewLogged("this error is logged the moment it is created")
}

func realWorldScenario() {
	log.Println("connecting to the database")
	if _, err := demo.Connect(); err != nil {
		fmt.Println(color.HiRedString("connect failed: %s", err))
	}

	db := demo.New()

	user, err := db.User(123)
	if err != nil {
		fmt.Println(color.HiRedString("lookup failed: %s", err))
	} else {
		log.Printf("found user %d (%s)", user.ID, user.Name)
	}

	if err := db.Process(0); err != nil {
		fmt.Println(color.HiRedString("processing failed: %s", err))

		if loc, ok := errat.LocationOf(err); ok {
			log.Printf("failure created at %s", loc)
		}
	}
}
