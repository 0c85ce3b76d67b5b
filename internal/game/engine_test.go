package game

import (
	"strings"
	"testing"
	"time"
)

func testConfig(width, height int) GameConfig {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.Seed = 1
	return config
}

// clearInterior removes every crate and bomb tile, keeping the wall grid.
func clearInterior(s *Simulation) {
	b := s.Board()
	for y := 1; y < b.Height-1; y++ {
		for x := 1; x < b.Width-1; x++ {
			if b.At(x, y) != Wall {
				b.Set(x, y, Empty)
			}
		}
	}
}

func TestNewBoard(t *testing.T) {
	config := testConfig(15, 13)
	for _, seed := range []int64{1, 42, 12345, 99999} {
		config.Seed = seed
		b := NewSimulation(config).Board()

		if b.Width != config.Width || b.Height != config.Height {
			t.Fatalf("expected %dx%d, got %dx%d", config.Width, config.Height, b.Width, b.Height)
		}

		for x := 0; x < b.Width; x++ {
			if b.At(x, 0) != Wall || b.At(x, b.Height-1) != Wall {
				t.Errorf("seed %d: border at column %d should be Wall", seed, x)
			}
		}
		for y := 0; y < b.Height; y++ {
			if b.At(0, y) != Wall || b.At(b.Width-1, y) != Wall {
				t.Errorf("seed %d: border at row %d should be Wall", seed, y)
			}
		}

		for y := 2; y < b.Height-1; y += 2 {
			for x := 2; x < b.Width-1; x += 2 {
				if b.At(x, y) != Wall {
					t.Errorf("seed %d: pillar at (%d,%d) should be Wall, got %v", seed, x, y, b.At(x, y))
				}
			}
		}

		for _, sp := range SpawnPositions(b.Width, b.Height) {
			for _, d := range []Position{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				x, y := sp.X+d.X, sp.Y+d.Y
				if tile := b.At(x, y); tile == Crate {
					t.Errorf("seed %d: spawn area cell (%d,%d) holds a crate", seed, x, y)
				}
			}
			if b.At(sp.X, sp.Y) != Empty {
				t.Errorf("seed %d: spawn (%d,%d) should be Empty", seed, sp.X, sp.Y)
			}
		}
	}
}

func TestSmallBoardLayout(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	got := strings.ReplaceAll(s.RenderString(), "%", ".")
	want := "#####\n" +
		"#...#\n" +
		"#.#.#\n" +
		"#...#\n" +
		"#####"
	if got != want {
		t.Errorf("5x5 layout:\n%s\nwant:\n%s", got, want)
	}
}

func TestBoardDeterminism(t *testing.T) {
	a := NewClassicSimulation(15, 13, 12345)
	b := NewClassicSimulation(15, 13, 12345)
	c := NewClassicSimulation(15, 13, 54321)

	if a.RenderString() != b.RenderString() {
		t.Error("same seed should produce identical boards")
	}
	if a.RenderString() == c.RenderString() {
		t.Error("different seeds should produce different boards")
	}
	if a.Board().CountCrates() == 0 {
		t.Error("expected crates on a 15x13 board at density 0.7")
	}
}

func TestCreatePlayer(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(7, 1, 1, true)

	if !p.Alive || p.Speed != 1 || p.BombPower != 1 || p.MaxBombs != 1 || p.ActiveBombs != 0 {
		t.Errorf("unexpected defaults: %+v", *p)
	}
	if len(s.Players()) != 1 || s.Players()[0] != p {
		t.Fatal("player should be appended to the simulation")
	}
	if got, ok := s.PlayerAt(1, 1); !ok || got != p {
		t.Error("PlayerAt(1,1) should find the new player")
	}
	if _, ok := s.PlayerAt(3, 3); ok {
		t.Error("PlayerAt(3,3) should be empty")
	}

	lines := strings.Split(s.RenderString(), "\n")
	if lines[1][1] != 'P' {
		t.Errorf("player should render at (1,1), got %q", lines[1][1])
	}
}

func TestIsWalkable(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"border wall", 0, 0, false},
		{"center pillar", 2, 2, false},
		{"empty space", 1, 1, true},
		{"out of bounds left", -1, 0, false},
		{"out of bounds right", 5, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.IsWalkable(tc.x, tc.y); got != tc.want {
				t.Errorf("IsWalkable(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}

	s.Board().Set(1, 1, Crate)
	if s.IsWalkable(1, 1) {
		t.Error("crate should not be walkable")
	}
	s.Board().Set(1, 1, Empty)
	s.AddPowerup(1, 1, PowerupSpeed)
	if !s.IsWalkable(1, 1) {
		t.Error("a powerup cell should stay walkable")
	}
}

func TestMovePlayer(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)

	if !s.MovePlayer(p, 1, 0) {
		t.Fatal("move right into open space should succeed")
	}
	if p.X != 2 || p.Y != 1 {
		t.Errorf("after move right: expected (2,1), got (%v,%v)", p.X, p.Y)
	}

	// (2,2) is a pillar
	if s.MovePlayer(p, 0, 1) {
		t.Error("move down into pillar should fail")
	}
	if p.X != 2 || p.Y != 1 {
		t.Errorf("blocked move changed position to (%v,%v)", p.X, p.Y)
	}
}

func TestMovePlayerBlocked(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)

	s.MovePlayer(p, -1, 0)
	if p.X != 1 || p.Y != 1 {
		t.Errorf("move into border should be blocked, got (%v,%v)", p.X, p.Y)
	}

	p.X, p.Y = 1, 2
	s.MovePlayer(p, 1, 0)
	if p.X != 1 {
		t.Errorf("move into center wall should be blocked, got (%v,%v)", p.X, p.Y)
	}

	p.Alive = false
	p.X, p.Y = 1, 1
	if s.MovePlayer(p, 1, 0) {
		t.Error("dead players should not move")
	}
}

func TestPlaceBomb(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)

	if !s.PlaceBomb(p) {
		t.Fatal("first bomb should be placed")
	}
	if len(s.Bombs()) != 1 {
		t.Fatalf("expected 1 bomb, got %d", len(s.Bombs()))
	}
	b := s.Bombs()[0]
	if b.Timer != 3*time.Second || b.Power != 1 || b.OwnerID != 0 {
		t.Errorf("unexpected bomb %+v", *b)
	}
	if p.ActiveBombs != 1 {
		t.Errorf("expected ActiveBombs=1, got %d", p.ActiveBombs)
	}
	if s.Board().At(1, 1) != BombTile {
		t.Errorf("bomb tile should be set, got %v", s.Board().At(1, 1))
	}

	p.X, p.Y = 3, 3
	if s.PlaceBomb(p) {
		t.Error("should not place a second bomb at the limit")
	}

	p.MaxBombs = 2
	p.X, p.Y = 1, 1
	if s.PlaceBomb(p) {
		t.Error("should not place a bomb on an occupied cell")
	}
	if len(s.Bombs()) != 1 || p.ActiveBombs != 1 {
		t.Errorf("failed placements must not change state: %d bombs, %d active", len(s.Bombs()), p.ActiveBombs)
	}
}

func TestBombPowerSnapshot(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)
	p.BombPower = 3
	s.PlaceBomb(p)
	p.BombPower = 5
	if got := s.Bombs()[0].Power; got != 3 {
		t.Errorf("bomb power should be snapshotted at placement, got %d", got)
	}
}

func TestStayOnOwnBomb(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)
	s.PlaceBomb(p)

	if !s.MovePlayer(p, 0, 0) {
		t.Error("staying on the bomb just placed should succeed")
	}
	if p.X != 1 || p.Y != 1 {
		t.Errorf("player should remain on their bomb, got (%v,%v)", p.X, p.Y)
	}

	if !s.MovePlayer(p, 0, 1) {
		t.Fatal("stepping off the bomb should succeed")
	}
	if s.MovePlayer(p, 0, -1) {
		t.Error("should not step back onto the bomb")
	}
	if p.Y != 2 {
		t.Errorf("expected to stay at y=2, got %v", p.Y)
	}
}

func TestMoveOntoOtherBomb(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)
	other := s.CreatePlayer(1, 3, 1, true)
	if !s.PlaceBomb(other) {
		t.Fatal("bomb placement failed")
	}
	if !s.MovePlayer(other, 0, 1) {
		t.Fatal("owner should step off its bomb")
	}

	if !s.MovePlayer(p, 1, 0) {
		t.Fatal("move to (2,1) should succeed")
	}
	if s.MovePlayer(p, 1, 0) {
		t.Error("should not step onto another player's bomb")
	}
	if p.X != 2 || p.Y != 1 {
		t.Errorf("expected to stay at (2,1), got (%v,%v)", p.X, p.Y)
	}

	// Standing on one bomb does not open a different one.
	p.MaxBombs = 2
	s.PlaceBomb(p)
	if s.MovePlayer(p, 1, 0) {
		t.Error("a bomb under the player does not allow entering another bomb")
	}
}

func TestNewClassicSimulation(t *testing.T) {
	s := NewClassicSimulation(7, 7, 1)
	def := DefaultConfig()
	if s.Config.CrateDensity != def.CrateDensity || s.Config.PowerupChance != def.PowerupChance {
		t.Errorf("expected default probabilities, got density %v chance %v", s.Config.CrateDensity, s.Config.PowerupChance)
	}
	if s.Config.Seed != 1 || s.Width() != 7 || s.Height() != 7 {
		t.Errorf("unexpected config %+v", s.Config)
	}
	if s.Board().CountCrates() == 0 {
		t.Error("expected crates at the default density")
	}
	if got := NewClassicSimulation(7, 7, 1).RenderString(); got != s.RenderString() {
		t.Error("same seed should produce identical boards")
	}

	bare := NewSimulation(GameConfig{Width: 7, Height: 7, Seed: 1})
	if bare.Board().CountCrates() != 0 || bare.Config.PowerupChance != 0 {
		t.Error("zero probabilities are used as given")
	}
	if bare.Config.BombFuse != def.BombFuse || bare.Config.ExplosionDuration != def.ExplosionDuration {
		t.Error("zero timings fall back to the defaults")
	}
}

func TestExplosionCross(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	clearInterior(s)
	s.Board().Set(2, 2, Empty)

	p := s.CreatePlayer(0, 2, 2, true)
	s.PlaceBomb(p)
	b, _ := s.BombAt(2, 2)
	p.Alive = false // keep the player off the render
	s.ExplodeBomb(b)

	want := "#####\n" +
		"#.X.#\n" +
		"#XXX#\n" +
		"#.X.#\n" +
		"#####"
	if got := s.RenderString(); got != want {
		t.Errorf("explosion cross:\n%s\nwant:\n%s", got, want)
	}
	if p.ActiveBombs != 0 {
		t.Errorf("explosion should return the bomb to its owner, ActiveBombs=%d", p.ActiveBombs)
	}
	if len(s.Explosions()) != 5 {
		t.Errorf("expected 5 explosion cells, got %d", len(s.Explosions()))
	}
}

func TestExplosionStopsAtWall(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	clearInterior(s)

	p := s.CreatePlayer(0, 1, 2, true)
	p.BombPower = 3
	s.PlaceBomb(p)
	b, _ := s.BombAt(1, 2)
	p.Alive = false
	s.ExplodeBomb(b)

	want := "#####\n" +
		"#X..#\n" +
		"#X#.#\n" +
		"#X..#\n" +
		"#####"
	if got := s.RenderString(); got != want {
		t.Errorf("wall blocking:\n%s\nwant:\n%s", got, want)
	}
}

func TestCrateDestruction(t *testing.T) {
	s := NewSimulation(testConfig(7, 7))
	clearInterior(s)
	s.Board().Set(2, 1, Crate)

	p := s.CreatePlayer(0, 1, 1, true)
	p.BombPower = 3
	s.PlaceBomb(p)
	b, _ := s.BombAt(1, 1)
	p.Alive = false
	s.ExplodeBomb(b)

	if s.Board().At(2, 1) != Empty {
		t.Errorf("crate at (2,1) should be destroyed, got %v", s.Board().At(2, 1))
	}
	if !s.ExplosionAt(2, 1) {
		t.Error("explosion should reach the crate cell")
	}
	if s.ExplosionAt(3, 1) {
		t.Error("explosion must not pass a destroyed crate")
	}
	// Down is open: (1,2) and (1,3) burn, (1,4) too with power 3
	for _, y := range []int{2, 3, 4} {
		if !s.ExplosionAt(1, y) {
			t.Errorf("expected explosion at (1,%d)", y)
		}
	}
}

func TestExplosionDestroysPowerup(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)
	s.AddPowerup(2, 1, PowerupBomb)
	s.PlaceBomb(p)
	b, _ := s.BombAt(1, 1)
	s.ExplodeBomb(b)

	if _, ok := s.PowerupAt(2, 1); ok {
		t.Error("powerup in the blast should be destroyed")
	}
}

func TestChainReaction(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 2, true)
	p.MaxBombs = 2
	s.PlaceBomb(p)
	p.Y = 3
	s.PlaceBomb(p)

	first, _ := s.BombAt(1, 2)
	second, _ := s.BombAt(1, 3)
	s.ExplodeBomb(first)

	if second.Timer != 0 {
		t.Fatalf("chain reaction should zero the second fuse, got %v", second.Timer)
	}

	s.Update(time.Millisecond)
	if len(s.Bombs()) != 0 {
		t.Errorf("second bomb should detonate on the next update, %d left", len(s.Bombs()))
	}
	if p.ActiveBombs != 0 {
		t.Errorf("expected ActiveBombs=0, got %d", p.ActiveBombs)
	}
}

func TestExplodeBombTwiceIsNoop(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)
	s.PlaceBomb(p)
	b := s.Bombs()[0]
	s.ExplodeBomb(b)
	n := len(s.Explosions())
	s.ExplodeBomb(b)

	if p.ActiveBombs != 0 {
		t.Errorf("second detonation must not decrement again, got %d", p.ActiveBombs)
	}
	if len(s.Explosions()) != n {
		t.Errorf("second detonation must not add explosions")
	}
}

func TestBombLifecycle(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)
	s.PlaceBomb(p)
	s.MovePlayer(p, 1, 0)
	s.MovePlayer(p, 1, 0) // (3,1), out of a power-1 blast

	s.Update(2999 * time.Millisecond)
	if len(s.Bombs()) != 1 {
		t.Fatal("bomb should still be armed before its fuse ends")
	}

	s.Update(time.Millisecond)
	if len(s.Bombs()) != 0 {
		t.Fatal("bomb should explode when its fuse reaches zero")
	}
	if s.Board().At(1, 1) != Empty {
		t.Errorf("bomb tile should be cleared, got %v", s.Board().At(1, 1))
	}
	if p.ActiveBombs != 0 {
		t.Errorf("expected ActiveBombs=0, got %d", p.ActiveBombs)
	}
	if !p.Alive {
		t.Error("player outside the blast should survive")
	}
	if len(s.Explosions()) != 3 {
		t.Errorf("expected 3 explosion cells, got %d", len(s.Explosions()))
	}

	s.Update(500 * time.Millisecond)
	if len(s.Explosions()) != 0 {
		t.Errorf("explosions should burn out, %d left", len(s.Explosions()))
	}
}

func TestPlayerDamage(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)
	s.PlaceBomb(p)

	s.Update(3 * time.Second)
	if p.Alive {
		t.Error("player standing on the bomb should be killed")
	}
	if s.MovePlayer(p, 1, 0) {
		t.Error("dead player should not move")
	}
}

func TestCheckCollisions(t *testing.T) {
	t.Run("explosion kills", func(t *testing.T) {
		s := NewSimulation(testConfig(5, 5))
		p := s.CreatePlayer(0, 1, 1, true)
		s.AddExplosion(1, 1)
		s.CheckCollisions(p)
		if p.Alive {
			t.Error("player in an explosion should die")
		}
	})

	t.Run("powerup pickup", func(t *testing.T) {
		s := NewSimulation(testConfig(5, 5))
		p := s.CreatePlayer(0, 1, 1, true)
		s.AddPowerup(1, 1, PowerupBomb)
		s.CheckCollisions(p)
		if p.MaxBombs != 2 {
			t.Errorf("expected MaxBombs=2, got %d", p.MaxBombs)
		}
		if _, ok := s.PowerupAt(1, 1); ok {
			t.Error("powerup should be collected")
		}
	})

	t.Run("death before pickup", func(t *testing.T) {
		s := NewSimulation(testConfig(5, 5))
		p := s.CreatePlayer(0, 1, 1, true)
		s.AddPowerup(1, 1, PowerupPower)
		s.AddExplosion(1, 1)
		s.CheckCollisions(p)
		if p.Alive {
			t.Error("player should die")
		}
		if p.BombPower != 1 || len(p.Powerups) != 0 {
			t.Error("dead player must not pick up the powerup")
		}
		if _, ok := s.PowerupAt(1, 1); !ok {
			t.Error("powerup should remain on the board")
		}
	})
}

func TestApplyPowerup(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(0, 1, 1, true)

	s.ApplyPowerup(p, &Powerup{Type: PowerupBomb})
	s.ApplyPowerup(p, &Powerup{Type: PowerupPower})
	s.ApplyPowerup(p, &Powerup{Type: PowerupSpeed})
	if p.MaxBombs != 2 || p.BombPower != 2 || p.Speed != 1.5 {
		t.Errorf("single pickups: MaxBombs=%d BombPower=%d Speed=%v", p.MaxBombs, p.BombPower, p.Speed)
	}

	for i := 0; i < 20; i++ {
		for _, pt := range PowerupTypes {
			s.ApplyPowerup(p, &Powerup{Type: pt})
		}
	}
	if p.MaxBombs != MaxBombsCap {
		t.Errorf("MaxBombs should cap at %d, got %d", MaxBombsCap, p.MaxBombs)
	}
	if p.BombPower != BombPowerCap {
		t.Errorf("BombPower should cap at %d, got %d", BombPowerCap, p.BombPower)
	}
	if p.Speed != SpeedCap {
		t.Errorf("Speed should cap at %v, got %v", SpeedCap, p.Speed)
	}
	if len(p.Powerups) != 63 {
		t.Errorf("pickup history should not be capped, got %d entries", len(p.Powerups))
	}
}

func TestRenderPriority(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	s.Board().Set(1, 1, Crate)
	s.Board().Set(3, 1, Crate)

	owner := s.CreatePlayer(1, 2, 2, true)
	s.AddBomb(1, 2, owner)
	s.AddExplosion(3, 3)
	s.AddPowerup(3, 1, PowerupBomb)
	s.AddPowerup(1, 3, PowerupPower)
	s.AddPowerup(2, 3, PowerupSpeed)
	s.AddExplosion(2, 3)

	lines := strings.Split(s.RenderString(), "\n")
	checks := []struct {
		x, y int
		want byte
		what string
	}{
		{1, 1, '%', "crate"},
		{1, 2, '*', "bomb"},
		{2, 2, 'P', "player over wall"},
		{3, 1, 'B', "bomb powerup over crate"},
		{1, 3, 'P', "power powerup"},
		{2, 3, 'X', "explosion over powerup"},
		{3, 3, 'X', "explosion"},
		{3, 2, '.', "empty"},
	}
	for _, c := range checks {
		if got := lines[c.y][c.x]; got != c.want {
			t.Errorf("%s at (%d,%d): got %q, want %q", c.what, c.x, c.y, got, c.want)
		}
	}
}

func TestGameTimeAndReset(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	if s.GameTime() != 0 {
		t.Fatalf("expected zero game time, got %v", s.GameTime())
	}
	s.Update(100 * time.Millisecond)
	s.Update(50 * time.Millisecond)
	if s.GameTime() != 150*time.Millisecond {
		t.Errorf("expected 150ms, got %v", s.GameTime())
	}

	p := s.CreatePlayer(0, 1, 1, true)
	s.PlaceBomb(p)
	s.Reset()
	if s.GameTime() != 0 || len(s.Players()) != 0 || len(s.Bombs()) != 0 {
		t.Error("reset should clear the clock and all entities")
	}
}

func TestDeterministicPlaythrough(t *testing.T) {
	config := testConfig(15, 13)
	config.Seed = 99999
	a := NewSimulation(config)
	b := NewSimulation(config)

	script := func(s *Simulation) []string {
		var frames []string
		p := s.CreatePlayer(0, 7, 6, false)
		s.Board().Set(7, 6, Empty)
		s.Board().Set(8, 6, Crate)
		s.Board().Set(6, 6, Crate)
		p.BombPower = 2
		s.PlaceBomb(p)
		p.Alive = false
		for i := 0; i < 40; i++ {
			s.Update(100 * time.Millisecond)
			frames = append(frames, s.RenderString())
		}
		return frames
	}

	fa, fb := script(a), script(b)
	for i := range fa {
		if fa[i] != fb[i] {
			t.Fatalf("frame %d differs:\n%s\n---\n%s", i, fa[i], fb[i])
		}
	}
	if len(a.Powerups()) != len(b.Powerups()) {
		t.Errorf("powerup drops differ: %d vs %d", len(a.Powerups()), len(b.Powerups()))
	}
}

func TestWinCondition(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	if s.GameOver() {
		t.Error("a game with no players is not over")
	}
	p1 := s.CreatePlayer(0, 1, 1, true)
	p2 := s.CreatePlayer(1, 3, 3, false)

	if s.GameOver() {
		t.Error("game should run while two players live")
	}

	p2.Alive = false
	if !s.GameOver() {
		t.Error("game should be over when only 1 player alive")
	}
	if w, ok := s.Winner(); !ok || w != p1 {
		t.Errorf("winner should be p1, got %v", w)
	}

	p1.Alive = false
	if _, ok := s.Winner(); ok {
		t.Error("everyone dead is a draw")
	}
	if s.AliveCount() != 0 {
		t.Errorf("expected 0 alive, got %d", s.AliveCount())
	}
}

func TestApplyAction(t *testing.T) {
	s := NewSimulation(testConfig(5, 5))
	p := s.CreatePlayer(3, 1, 1, true)

	if !s.Apply(Action{PlayerID: 3, Type: ActionMove, Dir: DirRight}) {
		t.Fatal("move action should succeed")
	}
	if p.X != 2 {
		t.Errorf("expected x=2, got %v", p.X)
	}
	if !s.Apply(Action{PlayerID: 3, Type: ActionPlaceBomb}) {
		t.Error("bomb action should succeed")
	}
	if s.Apply(Action{PlayerID: 9, Type: ActionPlaceBomb}) {
		t.Error("unknown player should be ignored")
	}
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	config.Width = 3
	if err := config.Validate(); err == nil {
		t.Error("3-wide board should be rejected")
	}
	config = DefaultConfig()
	config.CrateDensity = 1.5
	if err := config.Validate(); err == nil {
		t.Error("density above 1 should be rejected")
	}
}
