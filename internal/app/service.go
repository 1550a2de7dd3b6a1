package app

import (
	"projroot/internal/adapters"
	"projroot/internal/ports"
	"projroot/internal/types"
)

type Service struct {
	Location ports.LocationPort
	Writer   ports.ResolutionWriterPort
	Report   ports.ResolutionFilePort
	Marker   string
}

func NewService() Service {
	return Service{
		Location: adapters.NewSourceLocationAdapter(),
		Writer:   adapters.NewResolutionWriterAdapter(),
		Report:   adapters.NewResolutionFileAdapter(),
		Marker:   types.DefaultMarker,
	}
}
