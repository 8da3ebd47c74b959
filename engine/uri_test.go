package engine

import "testing"

func collect(p *UriProvider, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = p.Next()
	}
	return out
}

func TestUriProviderNoDepthSingleObj(t *testing.T) {
	p := NewUriProvider("http://10.0.1.24:9003", "bucket", "my-dude", 0, 1, 0)
	want := []string{
		"http://10.0.1.24:9003/bucket/my-dude0",
		"http://10.0.1.24:9003/bucket/my-dude0",
		"http://10.0.1.24:9003/bucket/my-dude0",
	}
	assertURIs(t, collect(p, 3), want)
}

func TestUriProviderNoDepthMultiObj(t *testing.T) {
	p := NewUriProvider("http://10.0.1.24:9003", "bucket", "my-dude", 0, 2, 0)
	want := []string{
		"http://10.0.1.24:9003/bucket/my-dude0",
		"http://10.0.1.24:9003/bucket/my-dude1",
		"http://10.0.1.24:9003/bucket/my-dude0",
	}
	assertURIs(t, collect(p, 3), want)
}

func TestUriProviderOneDepthSingleObj(t *testing.T) {
	p := NewUriProvider("http://10.0.1.24:9003", "bucket", "my-dude", 1, 1, 1)
	want := []string{
		"http://10.0.1.24:9003/bucket/0/my-dude0",
		"http://10.0.1.24:9003/bucket/0/my-dude0",
		"http://10.0.1.24:9003/bucket/0/my-dude0",
	}
	assertURIs(t, collect(p, 3), want)
}

func TestUriProviderOneDepthMultiObj(t *testing.T) {
	p := NewUriProvider("http://10.0.1.24:9003", "bucket", "my-dude", 1, 2, 1)
	want := []string{
		"http://10.0.1.24:9003/bucket/0/my-dude0",
		"http://10.0.1.24:9003/bucket/0/my-dude1",
		"http://10.0.1.24:9003/bucket/0/my-dude0",
	}
	assertURIs(t, collect(p, 3), want)
}

func TestUriProviderMultiDepthSingleObj(t *testing.T) {
	p := NewUriProvider("http://10.0.1.24:9003", "bucket", "my-dude", 2, 1, 2)
	want := []string{
		"http://10.0.1.24:9003/bucket/0/0/my-dude0",
		"http://10.0.1.24:9003/bucket/0/1/my-dude0",
		"http://10.0.1.24:9003/bucket/1/0/my-dude0",
		"http://10.0.1.24:9003/bucket/1/1/my-dude0",
		"http://10.0.1.24:9003/bucket/0/0/my-dude0",
	}
	assertURIs(t, collect(p, 5), want)
}

func TestUriProviderMultiDepthMultiObj(t *testing.T) {
	p := NewUriProvider("http://10.0.1.24:9003", "bucket", "my-dude", 2, 2, 2)
	want := []string{
		"http://10.0.1.24:9003/bucket/0/0/my-dude0",
		"http://10.0.1.24:9003/bucket/0/0/my-dude1",
		"http://10.0.1.24:9003/bucket/0/1/my-dude0",
		"http://10.0.1.24:9003/bucket/0/1/my-dude1",
		"http://10.0.1.24:9003/bucket/1/0/my-dude0",
		"http://10.0.1.24:9003/bucket/1/0/my-dude1",
		"http://10.0.1.24:9003/bucket/1/1/my-dude0",
		"http://10.0.1.24:9003/bucket/1/1/my-dude1",
		"http://10.0.1.24:9003/bucket/0/0/my-dude0",
		"http://10.0.1.24:9003/bucket/0/0/my-dude1",
	}
	assertURIs(t, collect(p, 10), want)
}

func assertURIs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d uris, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("uri[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
