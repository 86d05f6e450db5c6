package main

import (
	"flag"
	"os"

	"aidememoire/pkg/blob"
	"aidememoire/pkg/log"
	"aidememoire/pkg/pairs"
	"aidememoire/pkg/server"
	"aidememoire/pkg/speech"
)

func main() {
	// Initialize logger first
	_ = log.Logger

	dataDir := flag.String("data", "build/data", "Blob storage directory path")
	namespace := flag.String("namespace", pairs.DefaultNamespace, "Blob key namespace prefix")
	port := flag.String("port", ":8080", "Server listen address")
	ttsURL := flag.String("tts-url", "", "Speech synthesizer endpoint URL")
	ttsVoice := flag.String("tts-voice", speech.DefaultVoice, "Speech synthesizer voice")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		log.SetDebugMode()
	}

	if *ttsURL == "" {
		log.Fatal().Msg("tts-url is required")
	}

	blobs, err := blob.NewFSStore(*dataDir)
	if err != nil {
		log.Fatal().Err(err).Str("data_dir", *dataDir).Msg("Failed to open blob storage")
	}

	synth := speech.NewClient(*ttsURL, *ttsVoice)
	store := pairs.New(blobs, synth, *namespace)

	srv := server.New(store)
	if err := srv.Start(*port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}

	os.Exit(0)
}
