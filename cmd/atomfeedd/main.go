package main

import (
	"flag"
	"fmt"

	lib "github.com/theoremus-urban-solutions/atomfeed"
	"github.com/theoremus-urban-solutions/atomfeed/config"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	format := flag.String("format", "xml", "xml|json")
	feedName := flag.String("feed", "", "feed name from config.feeds[]")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	lib.RegisterConfiguredFeeds()

	switch *mode {
	case "serve":
		lib.StartServer()
		lib.HandleGracefulShutdown()
	case "oneshot":
		buf, err := lib.RenderFeed(*feedName, *format)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	default:
		panic("unknown mode")
	}
}
