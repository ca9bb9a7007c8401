// Package testing provides helpers for exercising the interaction engines.
//
// # Pointer Sequences
//
// Drive a slider handle with a simulated pointer:
//
//	router := gestures.NewPointerRouter()
//	slider := multirange.New(multirange.Config{Router: router, ...})
//	sim := interacttest.NewPointerSimulator(router)
//
//	h := slider.Handles()[0]
//	id := sim.Press(h.HandlePointer, start)
//	sim.Move(id, end)
//	sim.Release(id, end)
//
// Pointer ids are allocated per simulator so concurrent sequences in one
// test never collide.
//
// # Golden Files
//
// Compare rendered output against a file under testdata:
//
//	interacttest.MatchesGolden(t, "testdata/tree.golden.yaml", out)
//
// Update golden files with:
//
//	INTERACT_UPDATE_GOLDEN=1 go test ./...
package testing
