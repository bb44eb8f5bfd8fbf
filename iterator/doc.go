// Package iterator demonstrates the Iterator pattern: sequential access to
// the elements of a collection without exposing how the collection is stored.
//
// LogRepository exposes the lines of a log, read lazily from any io.Reader,
// through the generic Iterator interface. Callers that prefer range-over-func
// can wrap any Iterator with All:
//
//	repo, err := iterator.OpenLogRepository("access.log")
//	if err != nil {
//	    return err
//	}
//	defer repo.Close()
//	for e := range iterator.All(repo.Iterator()) {
//	    fmt.Println(e)
//	}
//
// A read error ends the iteration; the LogIterator reports it through Err,
// in the manner of bufio.Scanner.
package iterator
