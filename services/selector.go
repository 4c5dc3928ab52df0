package services

import (
	"sort"

	"hotel-rate-monitor/models"
)

// Selector reduces one (hotel, date) batch of observations to the bounded
// set worth storing: the cheapest maxChannels channels, and within each the
// cheapest maxRooms rooms. Bounds are caps, not requirements: a thin batch
// comes back as-is.
type Selector struct {
	maxChannels int
	maxRooms    int
}

func NewSelector(maxChannels, maxRooms int) *Selector {
	return &Selector{maxChannels: maxChannels, maxRooms: maxRooms}
}

// Select deduplicates, ranks and bounds the batch. All sorts are stable, so
// price ties keep their original encounter order. An empty batch yields an
// empty result.
func (s *Selector) Select(batch []*models.Observation) []*models.Observation {
	if len(batch) == 0 {
		return nil
	}

	// Group by channel, dropping repeat (roomLabel, channel) sightings;
	// the first observation of a pair wins.
	channelOrder := make([]string, 0)
	byChannel := make(map[string][]*models.Observation)
	seen := make(map[[2]string]struct{})

	for _, o := range batch {
		pair := [2]string{o.RoomLabel, o.Channel}
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}

		if _, ok := byChannel[o.Channel]; !ok {
			channelOrder = append(channelOrder, o.Channel)
		}
		byChannel[o.Channel] = append(byChannel[o.Channel], o)
	}

	cheapest := func(obs []*models.Observation) int {
		min := obs[0].Price
		for _, o := range obs[1:] {
			if o.Price < min {
				min = o.Price
			}
		}
		return min
	}

	sort.SliceStable(channelOrder, func(i, j int) bool {
		return cheapest(byChannel[channelOrder[i]]) < cheapest(byChannel[channelOrder[j]])
	})
	if len(channelOrder) > s.maxChannels {
		channelOrder = channelOrder[:s.maxChannels]
	}

	var result []*models.Observation
	for _, ch := range channelOrder {
		rooms := byChannel[ch]
		sort.SliceStable(rooms, func(i, j int) bool {
			return rooms[i].Price < rooms[j].Price
		})
		if len(rooms) > s.maxRooms {
			rooms = rooms[:s.maxRooms]
		}
		result = append(result, rooms...)
	}
	return result
}
