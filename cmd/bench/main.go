// Command bench fires a fixed board state at a running decision server's
// /move endpoint repeatedly and reports response latency, for sanity
// checking the time-budget behavior against a real HTTP round trip.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"
)

type Game struct {
	ID      string  `json:"id"`
	Ruleset Ruleset `json:"ruleset"`
	Map     string  `json:"map"`
	Source  string  `json:"source"`
	Timeout int     `json:"timeout"`
}

type Ruleset struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Settings Settings `json:"settings"`
}

type Settings struct {
	FoodSpawnChance     int `json:"foodSpawnChance"`
	MinimumFood         int `json:"minimumFood"`
	HazardDamagePerTurn int `json:"hazardDamagePerTurn"`
}

type Board struct {
	Height  int     `json:"height"`
	Width   int     `json:"width"`
	Food    []Point `json:"food"`
	Hazards []Point `json:"hazards"`
	Snakes  []Snake `json:"snakes"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Snake struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Health         int            `json:"health"`
	Body           []Point        `json:"body"`
	Latency        string         `json:"latency"`
	Head           Point          `json:"head"`
	Shout          string         `json:"shout"`
	Customizations Customizations `json:"customizations"`
}

type Customizations struct {
	Color string `json:"color"`
	Head  string `json:"head"`
	Tail  string `json:"tail"`
}

type BattleSnakeGame struct {
	Game  Game  `json:"game"`
	Turn  int   `json:"turn"`
	Board Board `json:"board"`
	You   Snake `json:"you"`
}

func sampleGame(timeoutMS int) BattleSnakeGame {
	return BattleSnakeGame{
		Game: Game{
			ID: "bench-game",
			Ruleset: Ruleset{
				Name:    "standard",
				Version: "1.0.0",
				Settings: Settings{
					FoodSpawnChance: 15,
					MinimumFood:     1,
				},
			},
			Map:     "standard",
			Source:  "standard",
			Timeout: timeoutMS,
		},
		Turn: 40,
		Board: Board{
			Height: 11,
			Width:  11,
			Food:   []Point{{X: 5, Y: 5}},
			Snakes: []Snake{
				{
					ID:     "bench-us",
					Name:   "us",
					Health: 90,
					Body:   []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}},
					Head:   Point{X: 1, Y: 1},
				},
				{
					ID:     "bench-them",
					Name:   "them",
					Health: 80,
					Body:   []Point{{X: 9, Y: 9}, {X: 9, Y: 8}, {X: 9, Y: 7}},
					Head:   Point{X: 9, Y: 9},
				},
			},
		},
		You: Snake{
			ID:     "bench-us",
			Name:   "us",
			Health: 90,
			Body:   []Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}},
			Head:   Point{X: 1, Y: 1},
		},
	}
}

func main() {
	url := flag.String("url", "http://localhost:8080/move", "decision server move endpoint")
	requests := flag.Int("n", 20, "number of requests to send")
	timeoutMS := flag.Int("timeout-ms", 500, "engine timeout reported in the request")
	flag.Parse()

	body, err := json.Marshal(sampleGame(*timeoutMS))
	if err != nil {
		fmt.Println("marshal sample game:", err)
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	var total time.Duration
	for i := 0; i < *requests; i++ {
		start := time.Now()
		resp, err := client.Post(*url, "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Println("request failed:", err)
			continue
		}
		var result map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&result)
		resp.Body.Close()

		elapsed := time.Since(start)
		total += elapsed
		fmt.Printf("request %d: %v -> %v\n", i+1, elapsed, result["move"])
	}

	if *requests > 0 {
		fmt.Printf("average latency: %v\n", total/time.Duration(*requests))
	}
}
