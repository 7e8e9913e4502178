package game

// integrate advances every entity by one tick. Dead entities still waiting
// for compaction are skipped.
func (g *Game) integrate() {
	w := g.world
	screen := w.Screen

	for i := range w.Stars {
		w.Stars[i].Step(screen)
	}
	for _, p := range w.PowerUps {
		if !p.IsDead() {
			p.Step(screen)
		}
	}
	for _, p := range w.Projectiles {
		if !p.IsDead() {
			p.Step(screen)
		}
	}
	for _, e := range w.Enemies {
		if !e.IsDead() {
			e.Step(screen, g.profile.BossSpeed)
		}
	}
	for _, p := range w.Particles {
		if !p.IsDead() {
			p.Step()
		}
	}
	for _, t := range w.Texts {
		t.Step()
	}
}
