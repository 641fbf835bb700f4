/* main.go
 * The "main" method for running the bet tracker. For details see `readme.md`
 * Usage: go run main.go -mode="<mode>" -config="<path>"
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"bet-tracker/api/api"
	"bet-tracker/bot"
	"bet-tracker/config"
	"bet-tracker/web"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()

	// Flags
	modePtr := flag.String("mode", "bot", "Run mode: bot (discord bot), serve (http server), verify (one off grading run) or report (print a stored report)")
	datePtr := flag.String("date", "", "Date in yyyy-mm-dd form, defaults to yesterday. Only used with -mode=verify and -mode=report")
	configPtr := flag.String("config", "", "Path to a yaml config file, defaults are used when empty")
	dbPtr := flag.String("db", "bet_tracker", "Name of the mongo database to use")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	if err != nil {
		log.Println("No .env file loaded, relying on the environment")
	}

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}
	var discordToken string
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	} else {
		discordToken = os.Getenv("DISCORD_PROD_TOKEN")
	}

	apiPtr, err := api.NewAPI(cfg, *dbPtr, os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	switch *modePtr {
	case "bot":
		b, err := bot.NewBot(discordToken, apiPtr)
		if err != nil {
			log.Fatalf("failed to initialize bot: %v", err)
		}
		if err := b.Run(); err != nil {
			log.Fatalf("bot stopped: %v", err)
		}

	case "serve":
		if err := web.Start(web.Config{Addr: cfg.Web.Addr, API: apiPtr}); err != nil {
			log.Fatalf("http server stopped: %v", err)
		}

	case "verify":
		date, err := resolveDate(*datePtr)
		if err != nil {
			log.Fatalf("invalid -date flag: %v", err)
		}
		report, err := apiPtr.VerifyDate(context.Background(), date)
		if err != nil {
			log.Fatalf("verification run failed: %v", err)
		}
		fmt.Print(api.FormatReport(report))

	case "report":
		date, err := resolveDate(*datePtr)
		if err != nil {
			log.Fatalf("invalid -date flag: %v", err)
		}
		report, err := apiPtr.GetReport(date)
		if err != nil {
			log.Fatalf("no report for %s: %v", date, err)
		}
		fmt.Print(api.FormatReport(report))

	default:
		log.Fatalf("unknown mode %q, expected bot, serve, verify or report", *modePtr)
	}
}
