// Package cubesim provides a 3x3 Rubik's cube facelet model, a quarter-turn
// move engine, and a narrated layer-by-layer cross solver.
//
// # Quick Start
//
// Create a solved cube and apply moves:
//
//	cube := cubesim.New()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Sessions
//
// A Session owns a cube, its move history, and the status/step sinks used
// by a presentation layer:
//
//	sess := cubesim.NewSession()
//	sess.SetStatusCallback(func(msg string, busy bool) {
//	    fmt.Println(msg)
//	})
//	sess.Scramble(25)
//	result := sess.SolveCross()
//	fmt.Println("Cross complete:", result.Complete)
//
// # Solving
//
// The cross solver places the four white edges on the D face and narrates
// every attempt as a Step carrying the moves applied and a state snapshot.
// Later phases (corners, middle-layer edges, last layer) are extension
// points: implement PhaseSolver and register it with a Pipeline.
//
// # Serialization
//
// Cube.Serialize produces the 54-character string (faces F,R,U,B,L,D,
// row-major, alphabet rgbyow) that is the sole contract with rendering
// collaborators. Deserialize is its validated inverse.
package cubesim
