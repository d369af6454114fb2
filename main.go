// GraviCorr
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/japharel/gravicorr-go/gravicorr"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	parser := argparse.NewParser("GraviCorr", "Computes standard corrections for relative gravimeter survey stations")

	lat_base := parser.FloatPositional(&argparse.Options{
		Default: 4.6386,
		Help:    "Latitude of the base station (decimal degrees)"})

	distance := parser.Float("d", "distance", &argparse.Options{
		Default: 0.0,
		Help:    "Signed distance of the station from the base (m)"})

	height := parser.Float("z", "height", &argparse.Options{
		Default: 0.0,
		Help:    "Height of the station (m)"})

	rho := parser.Float("r", "density", &argparse.Options{
		Default: 2.67,
		Help:    "Bouguer density for the area (g/cm3)"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger := logging.GetLogger("gravicorr")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// Closed-form corrections for a single station
	st_latitude := gravicorr.LatDist(*lat_base, []float64{*distance})
	g_n := gravicorr.Gn(st_latitude)
	lat_corr := gravicorr.LatitudeCorrection(*lat_base, nil, []float64{*distance})
	air_corr := gravicorr.AirCorrection([]float64{*height})
	boug_corr := gravicorr.BouguerCorrection(*rho, []float64{*height})

	fmt.Printf("station latitude:     %11.6f deg\n", st_latitude[0])
	fmt.Printf("normal gravity GRS67: %11.3f mGal\n", g_n[0])
	fmt.Printf("latitude correction:  %11.4f mGal\n", lat_corr[0])
	fmt.Printf("free-air correction:  %11.4f mGal\n", air_corr[0])
	fmt.Printf("Bouguer correction:   %11.4f mGal\n", boug_corr[0])
}
