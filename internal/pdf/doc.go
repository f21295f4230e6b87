// Package pdf compiles rendered LaTeX source into a PDF.
//
// Two engines are supported:
//   - local: invokes pdflatex from the host's TeX installation via os/exec
//   - docker: runs the same compile inside a TeX Live container through
//     the Docker Engine SDK, for hosts without a TeX installation
//
// Compilation is a one-shot external process; success or failure is
// reported through the process/container exit status, with the tail of
// the TeX log attached to errors for diagnosis.
package pdf
