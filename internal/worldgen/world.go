// Package worldgen builds the terrain grid: altitude, rainfall and
// temperature fields derived from layered spherical gradient noise, the
// biome each cell resolves to, and the river/resource overlays simulation A
// adds on top.
package worldgen

import (
	"math"
	"math/rand"

	"github.com/evoterra/evoterra/internal/mathutil"
	"github.com/evoterra/evoterra/internal/noise"
)

// World-wide value ranges. Exported so other packages can reason about
// them without importing magic numbers of their own; the biome acceptance
// windows in this package are expressed in terms of them.
const (
	MinAltitude    = -15000.0
	MaxAltitude    = 15000.0
	MinRainfall    = 0.0
	MaxRainfall    = 13000.0
	MinTemperature = -35.0
	MaxTemperature = 30.0

	altitudeSpan    = MaxAltitude - MinAltitude
	rainfallSpan    = MaxRainfall - MinRainfall
	drynessFactor   = 0.005
	drynessOffset   = drynessFactor * MaxRainfall
	temperatureSpan = MaxTemperature - MinTemperature
	tempAltFactor   = 2.05

	numContinents        = 12
	continentMaxSizeFrac = 8.7
	continentMinSizeFrac = 5.7
)

// BiomePresence is one biome's normalized share of a cell's character.
type BiomePresence struct {
	Biome    BiomeType
	Presence float64
}

// TerrainCell is the generated state of one map tile.
type TerrainCell struct {
	Altitude    float64
	Rainfall    float64
	Temperature float64
	Presences   []BiomePresence
	IsRiver     bool
	Resource    ResourceType
	HasResource bool
}

// DominantBiome returns the cell's highest-presence biome.
func (c *TerrainCell) DominantBiome() BiomeType {
	best := BiomeOcean
	bestP := -1.0
	for _, p := range c.Presences {
		if p.Presence > bestP {
			bestP = p.Presence
			best = p.Biome
		}
	}
	return best
}

// IsLand reports whether the cell is above sea level.
func (c *TerrainCell) IsLand() bool { return c.Altitude > 0 }

// World is the generated terrain grid.
type World struct {
	Width, Height int
	Seed          uint32
	Terrain       [][]TerrainCell

	continentOffsets [numContinents][2]float64
	continentSizes   [numContinents][2]float64

	gen noise.Generator
}

// Generate builds a new terrain grid deterministically from seed. Equal
// (width, height, seed) triples always produce bit-identical terrain.
func Generate(width, height int, seed uint32) *World {
	rng := rand.New(rand.NewSource(int64(seed)))

	w := &World{
		Width:  width,
		Height: height,
		Seed:   seed,
		gen:    noise.NewGenerator(int64(seed)),
	}
	w.Terrain = make([][]TerrainCell, height)
	for y := range w.Terrain {
		w.Terrain[y] = make([]TerrainCell, width)
	}

	w.generateContinents(rng)
	w.generateAltitude(rng)
	w.generateRainfall(rng)
	w.generateTemperature(rng)
	w.generateBiomes()
	w.placeRivers(seed)
	w.placeResources(seed)

	return w
}

func (w *World) generateContinents(rng *rand.Rand) {
	width := float64(w.Width)
	height := float64(w.Height)

	const longitudeFactor = 15.0
	const latitudeFactor = 6.0

	prevX := rng.Float64() * width * (longitudeFactor - 1) / longitudeFactor
	prevY := height/latitudeFactor + rng.Float64()*(height*(latitudeFactor-1)/latitudeFactor-height/latitudeFactor)

	for i := 0; i < numContinents; i++ {
		widthOffset := rng.Float64() * 6.0

		w.continentOffsets[i] = [2]float64{prevX, prevY}
		sizeLo := continentMinSizeFrac + widthOffset
		sizeHi := continentMaxSizeFrac + widthOffset
		w.continentSizes[i] = [2]float64{
			sizeLo + rng.Float64()*(sizeHi-sizeLo),
			sizeLo + rng.Float64()*(sizeHi-sizeLo),
		}

		yLo := height / latitudeFactor
		yHi := height * (latitudeFactor - 1) / latitudeFactor
		yPosition := yLo + rng.Float64()*(yHi-yLo)

		var newX float64
		if i%3 == 2 {
			lo := width * 4.0 / longitudeFactor
			hi := width * 6.0 / longitudeFactor
			newX = mathutil.Repeat(prevX+lo+rng.Float64()*(hi-lo), width)
		} else {
			lo := width / longitudeFactor
			hi := width * 2.0 / longitudeFactor
			newX = mathutil.Repeat(prevX+lo+rng.Float64()*(hi-lo), width)
		}

		prevX = newX
		prevY = yPosition
	}
}

func (w *World) continentDistance(continentNum, x, y int) float64 {
	betaFactor := math.Sin(math.Pi * float64(y) / float64(w.Height))

	cx := w.continentOffsets[continentNum][0]
	cy := w.continentOffsets[continentNum][1]

	width := float64(w.Width)
	dxRaw := cx - float64(x)
	distanceX := math.Min(math.Abs(dxRaw), math.Min(math.Abs(width+dxRaw), math.Abs(dxRaw-width))) * betaFactor
	distanceY := math.Abs(cy - float64(y))

	cw := w.continentSizes[continentNum][0]
	ch := w.continentSizes[continentNum][1]

	return math.Sqrt(sq(distanceX*cw) + sq(distanceY*ch))
}

func (w *World) continentModifier(x, y int) float64 {
	maxValue := 0.0

	for i := 0; i < numContinents; i++ {
		distance := w.continentDistance(i, x, y)
		value := clamp((1 - distance/float64(w.Width)), 0, 1)

		otherValue := value
		if value > maxValue {
			otherValue = maxValue
			maxValue = value
		}

		valueMod := math.Min(otherValue*2, 1)
		maxValue = mathutil.MixValues(maxValue, otherValue, valueMod)
	}

	return maxValue
}

func randomOffsetVector(rng *rand.Rand) mathutil.Vec3 {
	return mathutil.RandomPointInSphere(rng, 1000.0)
}

func sq(v float64) float64 { return v * v }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (w *World) generateAltitude(rng *rand.Rand) {
	const (
		r1 = 0.75
		r2 = 8.0
		r3 = 4.0
		r4 = 8.0
		r5 = 16.0
		r6 = 64.0
		r7 = 128.0
		r8 = 1.5
		r9 = 1.0
	)

	o1 := randomOffsetVector(rng)
	o1b := randomOffsetVector(rng)
	o2 := randomOffsetVector(rng)
	o2b := randomOffsetVector(rng)
	o3 := randomOffsetVector(rng)
	o4 := randomOffsetVector(rng)
	o5 := randomOffsetVector(rng)
	o6 := randomOffsetVector(rng)
	o7 := randomOffsetVector(rng)
	o8 := randomOffsetVector(rng)
	o9 := randomOffsetVector(rng)

	for y := 0; y < w.Height; y++ {
		alpha := float64(y) / float64(w.Height) * math.Pi
		for x := 0; x < w.Width; x++ {
			beta := float64(x) / float64(w.Width) * 2 * math.Pi

			v1 := w.gen.SampleAt(alpha, beta, r1, o1)
			v1b := w.gen.SampleAt(alpha, beta, r1, o1b)
			v2 := w.gen.SampleAt(alpha, beta, r2, o2)
			v2b := w.gen.SampleAt(alpha, beta, r2, o2b)
			v3 := w.gen.SampleAt(alpha, beta, r3, o3)
			v4 := w.gen.SampleAt(alpha, beta, r4, o4)
			v5 := w.gen.SampleAt(alpha, beta, r5, o5)
			v6 := w.gen.SampleAt(alpha, beta, r6, o6)
			v7 := w.gen.SampleAt(alpha, beta, r7, o7)
			v8 := w.gen.SampleAt(alpha, beta, r8, o8)*1.5 + 0.25
			v9 := w.gen.SampleAt(alpha, beta, r9, o9)

			va := w.continentModifier(x, y)
			va = mathutil.MixValues(va, v3, 0.22*v8)
			va = mathutil.MixValues(va, v4, 0.15*v8)
			va = mathutil.MixValues(va, v5, 0.1*v8)
			va = mathutil.MixValues(va, v6, 0.03*v8)
			va = mathutil.MixValues(va, v7, 0.005*v8)

			vc := mathutil.MixValues(v1, v9, 0.5*v8)
			vc = mathutil.MixValues(vc, v2, 0.04*v8)
			vc = noise.MountainRangeNoise(vc, 25.0)

			vcb := mathutil.MixValues(v1b, v9, 0.5*v8)
			vcb = mathutil.MixValues(vcb, v2b, 0.04*v8)
			vcb = noise.MountainRangeNoise(vcb, 25.0)

			vc = mathutil.MixValues(vc, vcb, 0.5*v8)
			vc = mathutil.MixValues(vc, v3, 0.35*v8)
			vc = mathutil.MixValues(vc, v4, 0.075)
			vc = mathutil.MixValues(vc, v5, 0.05)
			vc = mathutil.MixValues(vc, v6, 0.02)
			vc = mathutil.MixValues(vc, v7, 0.01)

			vb := mathutil.MixValues(va, va*0.02+0.49, va-math.Max(2*vc-1, 0.0))
			vd := mathutil.MixValues(vb, vc, 0.225*v8)

			w.Terrain[y][x].Altitude = MinAltitude + vd*altitudeSpan
		}
	}
}

func (w *World) generateRainfall(rng *rand.Rand) {
	const (
		r1 = 2.0
		r2 = 1.0
		r3 = 16.0
	)

	o1 := randomOffsetVector(rng)
	o2 := randomOffsetVector(rng)
	o3 := randomOffsetVector(rng)

	width, height := w.Width, w.Height

	for y := 0; y < height; y++ {
		alpha := float64(y) / float64(height) * math.Pi
		for x := 0; x < width; x++ {
			beta := float64(x) / float64(width) * 2 * math.Pi

			rn1 := w.gen.SampleAt(alpha, beta, r1, o1)
			rn2 := w.gen.SampleAt(alpha, beta, r2, o2)*1.5 + 0.25
			rn3 := w.gen.SampleAt(alpha, beta, r3, o3)

			va := mathutil.MixValues(rn1, rn3, 0.15)

			latFactor := alpha + (va*2-1)*math.Pi*0.2
			latMod1 := 1.5*math.Sin(latFactor) - 0.5
			latMod2 := math.Cos(latFactor)

			ox1 := (width + x + int(math.Floor(latMod2*float64(width)/20.0))) % width
			ox2 := (width + x + int(math.Floor(latMod2*float64(width)/15.0))) % width
			ox3 := (width + x + int(math.Floor(latMod2*float64(width)/10.0))) % width
			ox4 := (width + x + int(math.Floor(latMod2*float64(width)/5.0))) % width
			oy := int(math.Floor(float64(y) + latMod2*float64(height)/10.0))
			if oy < 0 {
				oy = 0
			}
			if oy > height-1 {
				oy = height - 1
			}

			oa1 := math.Max(w.Terrain[y][ox1].Altitude, 0)
			oa2 := math.Max(w.Terrain[y][ox2].Altitude, 0)
			oa3 := math.Max(w.Terrain[y][ox3].Altitude, 0)
			oa4 := math.Max(w.Terrain[y][ox4].Altitude, 0)
			oa5 := math.Max(w.Terrain[oy][x].Altitude, 0)

			alt := math.Max(w.Terrain[y][x].Altitude, 0)

			altMod := (alt - oa1*0.7 - oa2*0.6 - oa3*0.5 - oa4*0.4 - oa5*0.5 +
				MaxAltitude*0.18*rn2 - alt*0.25) / MaxAltitude

			rv := mathutil.MixValues(latMod1, altMod, 0.85)
			rv = mathutil.MixValues(math.Copysign(math.Pow(rv, 2), rv), rv, 0.75)

			rainfall := clamp((rv*(rainfallSpan+drynessOffset))+MinRainfall-drynessOffset, 0, MaxRainfall)

			w.Terrain[y][x].Rainfall = rainfall
		}
	}
}

func (w *World) generateTemperature(rng *rand.Rand) {
	o1 := randomOffsetVector(rng)
	o2 := randomOffsetVector(rng)
	const (
		r1 = 2.0
		r2 = 16.0
	)

	for y := 0; y < w.Height; y++ {
		alpha := float64(y) / float64(w.Height) * math.Pi
		for x := 0; x < w.Width; x++ {
			beta := float64(x) / float64(w.Width) * 2 * math.Pi

			rn1 := w.gen.SampleAt(alpha, beta, r1, o1)
			rn2 := w.gen.SampleAt(alpha, beta, r2, o2)

			latMod := alpha*0.9 + (rn1+rn2)*0.05*math.Pi
			altFactor := math.Max(w.Terrain[y][x].Altitude/MaxAltitude*tempAltFactor, 0)

			temperature := clamp((math.Sin(latMod)-altFactor)*temperatureSpan+MinTemperature, MinTemperature, MaxTemperature)

			w.Terrain[y][x].Temperature = temperature
		}
	}
}

func (w *World) generateBiomes() {
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			cell := &w.Terrain[y][x]
			total := 0.0
			var presences []BiomePresence

			for _, bt := range AllBiomes {
				presence := biomePresence(cell, bt.stats())
				if presence > 0 {
					presences = append(presences, BiomePresence{Biome: bt, Presence: presence})
					total += presence
				}
			}

			for i := range presences {
				presences[i].Presence /= total
			}
			cell.Presences = presences
		}
	}
}

func biomePresence(cell *TerrainCell, stats biomeStats) float64 {
	altDiff := cell.Altitude - stats.minAltitude
	if altDiff < 0 {
		return 0
	}
	altFactor := altDiff / (stats.maxAltitude - stats.minAltitude)
	if altFactor > 1 {
		return 0
	}
	presence := altFactor
	if altFactor > 0.5 {
		presence = 1 - altFactor
	}

	rainDiff := cell.Rainfall - stats.minRainfall
	if rainDiff < 0 {
		return 0
	}
	rainFactor := rainDiff / (stats.maxRainfall - stats.minRainfall)
	if rainFactor > 1 {
		return 0
	}
	if rainFactor > 0.5 {
		presence += 1 - rainFactor
	} else {
		presence += rainFactor
	}

	tempDiff := cell.Temperature - stats.minTemperature
	if tempDiff < 0 {
		return 0
	}
	tempFactor := tempDiff / (stats.maxTemperature - stats.minTemperature)
	if tempFactor > 1 {
		return 0
	}
	if tempFactor > 0.5 {
		presence += 1 - tempFactor
	} else {
		presence += tempFactor
	}

	return presence
}

// HabitableTiles returns all land tiles whose dominant biome can support
// land creatures, as (x, y) pairs.
func (w *World) HabitableTiles() [][2]int {
	var tiles [][2]int
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if w.Terrain[y][x].DominantBiome().IsHabitable() {
				tiles = append(tiles, [2]int{x, y})
			}
		}
	}
	return tiles
}

// placeRivers traces a short downhill path from scattered highland sources
// towards lower ground, marking each crossed tile as a river. This is a
// simulation-A detail the distilled spec leaves unspecified; the tracing
// approach follows the reference generator's source-then-flow-downhill
// method rather than a hydrologically exact watershed model.
func (w *World) placeRivers(seed uint32) {
	rng := rand.New(rand.NewSource(int64(seed) + 100))

	const numSources = 40
	const maxLength = 60

	for i := 0; i < numSources; i++ {
		x := rng.Intn(w.Width)
		y := rng.Intn(w.Height)
		if w.Terrain[y][x].Altitude < MaxAltitude*0.35 {
			continue
		}

		for step := 0; step < maxLength; step++ {
			w.Terrain[y][x].IsRiver = true
			if w.Terrain[y][x].Altitude <= 0 {
				break
			}

			bestX, bestY := x, y
			bestAlt := w.Terrain[y][x].Altitude
			for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx := ((x+d[0])%w.Width + w.Width) % w.Width
				ny := y + d[1]
				if ny < 0 || ny >= w.Height {
					continue
				}
				if w.Terrain[ny][nx].Altitude < bestAlt {
					bestAlt = w.Terrain[ny][nx].Altitude
					bestX, bestY = nx, ny
				}
			}
			if bestX == x && bestY == y {
				break
			}
			x, y = bestX, bestY
		}
	}
}

// placeResources scatters resource deposits over land and ocean tiles,
// biased by biome richness, as a simulation-A detail (economy/trade consumes this
// but is outside this repo's scope; the tiles are exposed so a host can
// build that on top).
func (w *World) placeResources(seed uint32) {
	rng := rand.New(rand.NewSource(int64(seed) + 200))

	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			cell := &w.Terrain[y][x]
			biome := cell.DominantBiome()
			chance := biome.resourceChance()
			if chance <= 0 {
				continue
			}
			if rng.Float64() > chance {
				continue
			}
			options := biome.resourceOptions()
			if len(options) == 0 {
				continue
			}
			cell.Resource = options[rng.Intn(len(options))]
			cell.HasResource = true
		}
	}
}
