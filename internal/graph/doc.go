// Package graph wires calculation nodes into a directed graph and runs the
// two passes the graph supports: the compute pass, which pushes data through
// the nodes, and the frequency pass, which infers the output frequency
// without touching data.
//
// # Structure
//
// A Graph is built once from a list of EdgeSpec values and never changes
// afterwards. Nodes are stored in an arena and addressed by NodeID, assigned
// in order of first appearance in the edge list:
//
//	Input(TS1) ──inputIdx=1──▶ Subtract ──▶ Aggregate(Q-max) ──▶ Output(NEW)
//	Input(TS2) ──inputIdx=2──▶    ▲
//
// Nodes without incoming edges are input nodes. The single node without
// outgoing edges is the output node. Both roles are derived from the edge
// list and checked each time they are queried, so an incomplete graph can be
// constructed and inspected but not evaluated.
//
// Edges are keyed by (source, target, inputIdx, outputIdx). Repeating a key
// collapses into the existing edge; a different input or output index creates
// a parallel edge, which is how a node can consume the same predecessor twice
// or a split can feed two of its columns to one successor.
//
// # Passes
//
// Both passes run the same traversal, parameterized by an evaluator:
//
//  1. **Seed:** every input node is evaluated against the external value and
//     its result is staged onto its outgoing edges.
//  2. **Fixpoint:** each round collects the frontier, the nodes whose incoming
//     edges are all populated and whose outgoing edges are still empty, and
//     evaluates it in NodeID order. A round is one iteration.
//  3. **Capture:** evaluating the output node ends the pass.
//
// A pass that runs out of frontier or iterations before reaching the output
// node fails with calcerr.ErrGraphIncomplete. Cycles therefore fail instead
// of hanging. A failing node is reported as *calcerr.NodeEvaluationError.
//
// # Thread-Safety
//
// Edge payloads live in a per-call buffer, never on the Graph, so passes on
// one graph may run concurrently. The only shared mutable state is each
// node's last-result cache, which is guarded by the node itself and is kept
// for introspection only.
package graph
