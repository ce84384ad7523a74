package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eternalStudent/RayTracer/pkg/core"
	"github.com/eternalStudent/RayTracer/pkg/geometry"
	"github.com/eternalStudent/RayTracer/pkg/material"
	"github.com/eternalStudent/RayTracer/pkg/scene"
)

// WriteScene writes s in the scene file format read by ParseScene. Every
// primitive's material must appear in s.Materials.
func WriteScene(w io.Writer, s *scene.Scene) error {
	indices := make(map[*material.Material]int, len(s.Materials))
	for i, m := range s.Materials {
		if _, seen := indices[m]; !seen {
			indices[m] = i + 1
		}
	}

	out := bufio.NewWriter(w)
	c := s.Camera
	writeRecord(out, "cam", vecFields(c.Position), vecFields(c.LookAt), vecFields(c.Up),
		formatFloat(c.ScreenDistance), formatFloat(c.ScreenWidth))

	settings := s.Settings
	samples := 1
	if settings.AntiAliasing {
		samples = settings.Samples
	}
	writeRecord(out, "set", colorFields(settings.Background),
		strconv.Itoa(settings.ShadowRays), strconv.Itoa(settings.MaxDepth), strconv.Itoa(samples))

	for _, m := range s.Materials {
		writeRecord(out, "mtl", colorFields(m.Diffuse), colorFields(m.Specular), colorFields(m.Reflection),
			formatFloat(m.Phong), formatFloat(m.Transparency))
	}

	for i, primitive := range s.Primitives {
		index, ok := indices[primitive.GetMaterial()]
		if !ok {
			return fmt.Errorf("primitive %d uses a material missing from the material table", i)
		}
		materialField := strconv.Itoa(index)

		switch p := primitive.(type) {
		case *geometry.Sphere:
			writeRecord(out, "sph", vecFields(p.Center), formatFloat(p.Radius), materialField)
		case *geometry.Plane:
			writeRecord(out, "pln", vecFields(p.Normal), formatFloat(p.Offset), materialField)
		case *geometry.Box:
			writeRecord(out, "box", vecFields(p.Min), vecFields(p.Max), materialField)
		default:
			return fmt.Errorf("primitive %d: unsupported type %T", i, primitive)
		}
	}

	for _, l := range s.Lights {
		writeRecord(out, "lgt", vecFields(l.Position), colorFields(l.Color),
			formatFloat(l.Specular), formatFloat(l.Shadow), formatFloat(l.Width))
	}

	return out.Flush()
}

// writeRecord writes one space-separated line; write errors surface on Flush
func writeRecord(out *bufio.Writer, code string, fields ...string) {
	out.WriteString(code)
	out.WriteByte(' ')
	out.WriteString(strings.Join(fields, " "))
	out.WriteByte('\n')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func vecFields(v core.Vec3) string {
	return formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z)
}

func colorFields(c core.Color) string {
	return formatFloat(c.R) + " " + formatFloat(c.G) + " " + formatFloat(c.B)
}
