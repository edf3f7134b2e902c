package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
	"github.com/rian010194/shadows-of-the-dungeon/pkg/dungeon"
)

// Утилита для отладки генератора: печатает карту подземелья в консоль.
// Usage: go run ./cmd/mapgen -seed 42 -w 5 -h 5

var markers = map[domain.RoomType]rune{
	domain.RoomStart:    'S',
	domain.RoomKey:      'K',
	domain.RoomPortal:   'P',
	domain.RoomBoss:     'B',
	domain.RoomMonster:  'm',
	domain.RoomTreasure: '$',
	domain.RoomTrap:     '^',
	domain.RoomHall:     '.',
	domain.RoomEmpty:    ' ',
}

func main() {
	var seed int64
	var width, height int
	flag.Int64Var(&seed, "seed", 0, "Generation seed (0 for random)")
	flag.IntVar(&width, "w", dungeon.DefaultWidth, "Grid width")
	flag.IntVar(&height, "h", dungeon.DefaultHeight, "Grid height")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fmt.Printf("Seed: %d (%dx%d)\n\n", seed, width, height)

	rng := rand.New(rand.NewSource(seed))
	d := dungeon.Generate(width, height, rng)

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			room := d.Rooms[y*d.Width+x]
			fmt.Printf("[%c]", markers[room.Type])
			if _, ok := room.Links[domain.DirEast]; ok {
				fmt.Print("-")
			} else {
				fmt.Print(" ")
			}
		}
		fmt.Println()
		if y == d.Height-1 {
			break
		}
		for x := 0; x < d.Width; x++ {
			room := d.Rooms[y*d.Width+x]
			if _, ok := room.Links[domain.DirSouth]; ok {
				fmt.Print(" |  ")
			} else {
				fmt.Print("    ")
			}
		}
		fmt.Println()
	}

	fmt.Println()
	for _, room := range d.Rooms {
		if room.Type == domain.RoomHall || room.Type == domain.RoomEmpty {
			continue
		}
		fmt.Printf("#%02d (%d,%d) %-8s %s\n", room.ID, room.X, room.Y, room.Type, room.Name)
	}
}
