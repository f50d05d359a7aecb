/*
Package builder turns a format-agnostic pipeline model (defined in the
'config' package) into a ready-to-run calculation graph (the 'graph'
package).

The construction is a multi-phase process:

 1. Node Creation: every node block is looked up in the registry by kind, its
    arguments are decoded by the config.Converter and the kind's constructor
    builds the calculation node. Unknown kinds and duplicate ids are errors.

 2. Edge Resolution: every edge block is resolved to its two nodes by id and
    its positional indexes become edge metadata. Nodes that no edge
    references are skipped with a warning, since a graph is defined by its
    edges.

 3. Validation: a depth-first search rejects cycles with a readable path
    before the graph is built. The graph itself then checks positional
    indexes of order-sensitive nodes.

The fixpoint bound comes from the caller's override when set, otherwise from
the pipeline block, otherwise the graph default applies.
*/
package builder
