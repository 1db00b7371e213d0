package main

import (
	"flag"
	"fmt"
	"log"
	"math"
)

// Flags
var (
	minTemp = flag.Float64("min", 0,
		"minimum temperature in K to keep")
	maxTemp = flag.Float64("max", math.MaxFloat64,
		"maximum temperature in K to keep")
	outfile = flag.String("o", "results.txt",
		"file to write the results to")
	confFile = flag.String("config", "",
		"TOML run configuration file, overridden by the other flags")
)

func main() {
	flag.Parse()
	conf := Config{
		Outfile: *outfile,
		MinTemp: *minTemp,
		MaxTemp: *maxTemp,
	}
	if *confFile != "" {
		var err error
		conf, err = LoadConfig(*confFile)
		if err != nil {
			log.Fatal(err)
		}
		// flags given explicitly beat the config file
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "min":
				conf.MinTemp = *minTemp
			case "max":
				conf.MaxTemp = *maxTemp
			case "o":
				conf.Outfile = *outfile
			}
		})
	}
	if args := flag.Args(); len(args) >= 1 {
		conf.Infile = args[0]
	}
	if conf.Infile == "" {
		log.Fatalln("no ORCA output file given, aborting")
	}
	n, err := Run(conf.Infile, conf.Outfile, conf.MinTemp, conf.MaxTemp)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Results for temperature range: %g - %g K\n",
		conf.MinTemp, conf.MaxTemp)
	fmt.Printf("%d results saved to %s\n", n, conf.Outfile)
}
