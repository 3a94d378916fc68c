package leveldata

// SummitGrid authors the built-in 152x34 climb.
func SummitGrid() []string {
	const width, height = 152, 34
	b := NewBuilder(width, height).Border()

	b.Fill(1, 29, 22, 4, CodeWall)
	b.Fill(30, 26, 20, 7, CodeWall)

	b.Fill(50, 29, 4, 4, CodeWall)
	b.Fill(53, 18, 2, 15, CodeWall)
	b.Fill(61, 14, 2, 19, CodeWall)
	b.Fill(63, 16, 14, 17, CodeWall)

	b.Fill(77, 10, 24, 2, CodeWall)
	b.Fill(77, 20, 24, 13, CodeWall)

	b.Fill(101, 24, 18, 9, CodeWall)
	b.Fill(119, 26, 6, 7, CodeWall)
	b.Fill(125, 20, 8, 13, CodeWall)
	b.Fill(133, 16, 8, 17, CodeWall)
	b.Fill(141, 12, 7, 21, CodeWall)
	b.Fill(148, 8, 2, 25, CodeWall)

	b.Span(23, 29, 32, CodeSpikeUp)
	b.Span(39, 42, 25, CodeSpikeUp)
	b.Span(56, 58, 32, CodeSpikeUp)
	b.Span(68, 70, 15, CodeSpikeUp)
	b.Span(84, 91, 12, CodeSpikeDown)
	b.Span(85, 92, 19, CodeSpikeUp)
	b.Span(108, 111, 23, CodeSpikeUp)
	b.Span(128, 130, 19, CodeSpikeUp)
	b.Span(136, 138, 15, CodeSpikeUp)
	b.Span(144, 146, 11, CodeSpikeUp)

	b.Set(4, 28, CodeSpawn)
	b.Set(15, 24, CodeBerry)
	b.Set(36, 22, CodeBerry)
	b.Set(74, 15, CodeCrystal)
	b.Set(95, 17, CodeBerry)
	b.Set(106, 23, CodeCheckpoint)
	b.Set(116, 20, CodeBerry)
	b.Set(138, 14, CodeCrystal)
	b.Set(145, 10, CodeBerry)
	b.Set(150, 7, CodeGoal)

	return b.Grid()
}

// Summit returns the parsed built-in level.
func Summit() *Level {
	return MustParse(SummitGrid())
}
