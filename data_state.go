package main

import "github.com/andareed/memoria/memorial"

type dataState struct {
	path           string
	session        *memorial.Session
	presenter      *memorial.Presenter
	counters       memorial.Counters
	visibleIndices []int // dataset indices of attached markers, in dataset order
}

func (d *dataState) dataset() memorial.Dataset {
	if d.session == nil {
		return nil
	}
	return d.session.Dataset()
}
