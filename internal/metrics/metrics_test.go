package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voider-dos/internal/cipher"
	"voider-dos/internal/nav"
	"voider-dos/internal/vfs"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ nav.Listener = Listener{}

func TestListenerCountsEvents(t *testing.T) {
	d := vfs.NewDirectory("Logs", time.Time{}, time.Time{})
	d.Encrypt(cipher.ROT13, "Ybtf", cipher.NoKey)
	d.Decode()

	before := testutil.ToFloat64(decryptionsTotal.WithLabelValues("rot13"))
	Listener{}.DirectoryDecrypted(d, true)
	if got := testutil.ToFloat64(decryptionsTotal.WithLabelValues("rot13")) - before; got != 1 {
		t.Errorf("rot13 decryptions delta = %v, want 1", got)
	}

	cases := []struct {
		file *vfs.File
		want string
	}{
		{&vfs.File{EasterEgg: true, Special: true}, "easter_egg"},
		{&vfs.File{Special: true}, "special"},
		{&vfs.File{}, "plain"},
	}
	for _, tc := range cases {
		before := testutil.ToFloat64(filesOpenedTotal.WithLabelValues(tc.want))
		Listener{}.FileOpened(tc.file)
		if got := testutil.ToFloat64(filesOpenedTotal.WithLabelValues(tc.want)) - before; got != 1 {
			t.Errorf("%s opens delta = %v, want 1", tc.want, got)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	active := testutil.ToFloat64(sessionsActive)
	finished := testutil.ToFloat64(sessionsTotal.WithLabelValues("finished"))

	SessionStarted()
	if got := testutil.ToFloat64(sessionsActive); got != active+1 {
		t.Errorf("active = %v after start, want %v", got, active+1)
	}
	SessionFinished(90*time.Second, 150)
	if got := testutil.ToFloat64(sessionsActive); got != active {
		t.Errorf("active = %v after finish, want %v", got, active)
	}
	if got := testutil.ToFloat64(sessionsTotal.WithLabelValues("finished")); got != finished+1 {
		t.Errorf("finished = %v, want %v", got, finished+1)
	}

	rejected := testutil.ToFloat64(sessionsTotal.WithLabelValues("rejected"))
	SessionRejected()
	if got := testutil.ToFloat64(sessionsTotal.WithLabelValues("rejected")); got != rejected+1 {
		t.Errorf("rejected = %v, want %v", got, rejected+1)
	}
}

func TestRecordWorld(t *testing.T) {
	before := testutil.ToFloat64(worldsGenerated)
	RecordWorld(vfs.Stats{TotalDirs: 40, TotalFiles: 120, EncryptedDirs: 12}, 3*time.Millisecond)
	if got := testutil.ToFloat64(worldsGenerated); got != before+1 {
		t.Errorf("worlds = %v, want %v", got, before+1)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordWorld(vfs.Stats{}, time.Millisecond)
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	for _, name := range []string{"voider_worlds_generated_total", "voider_world_nodes"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
