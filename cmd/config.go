package main

import "time"

type Config struct {
	Participants      string        `env:"PARTICIPANTS,required=true"`
	BufferSize        int           `env:"BUFFER_SIZE,default=64"`
	PollInterval      time.Duration `env:"POLL_INTERVAL,default=1s"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,default=2s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=1s"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	TranscriptPath    string        `env:"TRANSCRIPT_PATH"`
	TranscriptDelay   time.Duration `env:"TRANSCRIPT_DELAY,default=0s"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath     string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,default=info"`
	Colours           bool          `env:"COLOURS,default=true"`
	Voice             bool          `env:"VOICE,default=false"`
}
