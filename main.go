package main

import (
	"flag"
	"os"

	"github.com/BradenEverson/miami/midi"
	"github.com/sirupsen/logrus"
)

func main() {
	inputFile := ""
	outputFile := ""
	verbose := false

	flag.StringVar(&inputFile, "i", "", "input midi file")
	flag.StringVar(&outputFile, "o", "", "output midi file (re-encoded copy)")
	flag.BoolVar(&verbose, "v", false, "verbose logging")

	flag.Parse()

	if inputFile == "" {
		flag.Usage()
		return
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	inFile, err := os.Open(inputFile)
	if err != nil {
		logrus.Fatal(err)
	}
	defer inFile.Close()

	f := &midi.FileData{}
	if err := f.Decode(inFile); err != nil {
		logrus.Fatal(err)
	}

	logrus.Infof("format %d, %d tracks, division %v",
		f.Header.Format, f.Header.NumTracks, f.Header.Division)
	for i, track := range f.Tracks {
		logrus.Infof("track %d: %d events", i, len(track.Events))
	}

	if outputFile == "" {
		return
	}

	outFile, err := os.Create(outputFile)
	if err != nil {
		logrus.Fatal(err)
	}
	defer outFile.Close()

	if err := f.Encode(outFile); err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("wrote %s", outputFile)
}
