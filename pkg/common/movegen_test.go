package common

import (
	"math/rand"
	"testing"
)

func TestPerft(t *testing.T) {
	var tests = []struct {
		depth int
		nodes int
	}{
		{1, 7},
		{2, 49},
		{3, 302},
		{4, 1469},
		{5, 7361},
		{6, 36768},
	}
	var p = NewInitialPosition()
	for _, test := range tests {
		var nodes = Perft(&p, test.depth)
		if nodes != test.nodes {
			t.Error(test.depth, test.nodes, nodes)
		}
	}
}

func TestGenerateMoves(t *testing.T) {
	var tests = []struct {
		name  string
		fen   string
		moves []string
	}{
		{
			name:  "initial",
			fen:   InitialPositionFen,
			moves: []string{"a3-b4", "c3-b4", "c3-d4", "e3-d4", "e3-f4", "g3-f4", "g3-h4"},
		},
		{
			name:  "forced capture",
			fen:   "4/4/4/4/1x2/1o2/4/o3 o",
			moves: []string{"c3xe5"},
		},
		{
			name:  "branching chain",
			fen:   "4/4/1xx1/4/1x2/1o2/4/4 o",
			moves: []string{"c3xe5xc7", "c3xe5xg7"},
		},
		{
			name:  "king circle",
			fen:   "4/4/xx2/4/xx2/1O2/4/4 o",
			moves: []string{"c3xa5xc7xe5xc3", "c3xe5xc7xa5xc3"},
		},
		{
			name:  "promotion continues as king",
			fen:   "4/1xx1/o3/4/4/4/4/4 o",
			moves: []string{"b6xd8xf6"},
		},
		{
			name:  "player2 moves down",
			fen:   "4/4/4/4/1x2/4/4/4 x",
			moves: []string{"d4-c3", "d4-e3"},
		},
		{
			name:  "king moves back",
			fen:   "4/4/4/4/1X2/4/4/4 x",
			moves: []string{"d4-c5", "d4-e5", "d4-c3", "d4-e3"},
		},
		{
			name:  "blocked",
			fen:   "x3/o3/4/4/4/4/4/4 o",
			moves: nil,
		},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(test.name, err)
		}
		var buffer [MaxMoves]Move
		var ml = p.GenerateMoves(buffer[:])
		if len(ml) != len(test.moves) {
			t.Error(test.name, ml, test.moves)
			continue
		}
		for i := range ml {
			if ml[i].String() != test.moves[i] {
				t.Error(test.name, i, ml[i], test.moves[i])
			}
		}
		if p.HasMoves() != (len(ml) != 0) {
			t.Error(test.name, "HasMoves")
		}
	}
}

func TestKingCircleCapturesEverything(t *testing.T) {
	var p, err = NewPositionFromFEN("4/4/xx2/4/xx2/1O2/4/4 o")
	if err != nil {
		t.Fatal(err)
	}
	var buffer [MaxMoves]Move
	for _, move := range p.GenerateMoves(buffer[:]) {
		if move.CaptureCount() != 4 || move.From() != move.To() {
			t.Error(move)
		}
		var child Position
		p.MakeMove(move, &child)
		if child.Pieces[Player2] != 0 {
			t.Error(move, child.String())
		}
		if piece, side := child.WhatPiece(move.From()); piece != King || side != Player1 {
			t.Error(move, child.String())
		}
	}
}

func TestPromotionDuringCapture(t *testing.T) {
	var p, err = NewPositionFromFEN("4/1xx1/o3/4/4/4/4/4 o")
	if err != nil {
		t.Fatal(err)
	}
	var buffer [MaxMoves]Move
	var ml = p.GenerateMoves(buffer[:])
	if len(ml) != 1 || !ml[0].Promotion() {
		t.Fatal(ml)
	}
	var child Position
	p.MakeMove(ml[0], &child)
	if child.String() != "4/4/2O1/4/4/4/4/4 x 1" {
		t.Error(child.String())
	}
}

func TestSlidePromotion(t *testing.T) {
	var p, err = NewPositionFromFEN("4/o3/4/4/4/4/4/4 o")
	if err != nil {
		t.Fatal(err)
	}
	var buffer [MaxMoves]Move
	var ml = p.GenerateMoves(buffer[:])
	if len(ml) != 1 || !ml[0].Promotion() || ml[0].String() != "a7-b8" {
		t.Fatal(ml)
	}
	var child Position
	p.MakeMove(ml[0], &child)
	if piece, _ := child.WhatPiece(ml[0].To()); piece != King {
		t.Error(child.String())
	}
}

// Random games check the forced-capture rule and the cheap predicates against full generation.
func TestRandomGames(t *testing.T) {
	var r = rand.New(rand.NewSource(1))
	var buffer [MaxMoves]Move
	for game := 0; game < 200; game++ {
		var p = NewInitialPosition()
		for ply := 0; ply < 200; ply++ {
			var ml = p.GenerateMoves(buffer[:])
			if p.HasMoves() != (len(ml) != 0) {
				t.Fatal(p.String(), "HasMoves")
			}
			if p.HasCaptures() != (len(ml) != 0 && ml[0].IsCapture()) {
				t.Fatal(p.String(), "HasCaptures")
			}
			for _, move := range ml {
				if move.IsCapture() != ml[0].IsCapture() {
					t.Fatal(p.String(), "mixed captures and slides", ml)
				}
			}
			if len(ml) == 0 {
				break
			}
			var before = p
			var child Position
			p.MakeMove(ml[r.Intn(len(ml))], &child)
			if p != before {
				t.Fatal("source position modified")
			}
			if child.Key != child.computeKey() {
				t.Fatal(child.String(), "bad key")
			}
			p = child
		}
	}
}
