// Package integrationtests holds end-to-end scenarios that drive the
// application from pipeline and dataset files on disk.
package integrationtests
