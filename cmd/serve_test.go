package cmd

import (
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/0xERR0R/tldextract/helpertest"
)

const (
	basePort = 5000
)

var _ = Describe("Serve command", func() {
	var (
		tmpDir *helpertest.TmpFolder
		port   string
	)

	BeforeEach(func() {
		port = helpertest.GetStringPort(basePort)
		tmpDir = helpertest.NewTmpFolder("config")
		DeferCleanup(tmpDir.Clean)

		configPath = defaultConfigPath
	})

	writeConfig := func() {
		cfgFile := tmpDir.CreateStringFile("config.yaml",
			"suffixList:",
			"  source: snapshot",
			"http:",
			"  addr: 127.0.0.1:"+port)

		os.Setenv(configFileEnvVar, cfgFile.Path)
		DeferCleanup(func() { os.Unsetenv(configFileEnvVar) })
	}

	When("Serve command is called with valid config", func() {
		It("should start without error and terminate with signal", func() {
			writeConfig()

			errChan := make(chan error)
			By("start server", func() {
				go func() {
					// it is a blocking function, call async
					errChan <- startServer(newServeCommand(), []string{})
				}()
			})

			By("check HTTP port is open", func() {
				Eventually(func(g Gomega) {
					conn, err := net.DialTimeout("tcp", "127.0.0.1:"+port, 200*time.Millisecond)
					g.Expect(err).Should(Succeed())
					defer conn.Close()
				}).Should(Succeed())
			})

			By("terminate with signal", func() {
				signals <- syscall.SIGINT

				Eventually(errChan, "5s").Should(Receive(BeNil()))
			})
		})

		It("should fail if server start fails", func() {
			By("block port "+port, func() {
				l, err := net.Listen("tcp", "127.0.0.1:"+port)
				Expect(err).Should(Succeed())
				DeferCleanup(l.Close)

				go func() {
					_ = http.Serve(l, nil)
				}()
			})

			writeConfig()

			errChan := make(chan error)
			go func() {
				errChan <- startServer(newServeCommand(), []string{})
			}()

			var startError error
			Eventually(errChan, "10s").Should(Receive(&startError))
			Expect(startError).Should(MatchError(ContainSubstring("address already in use")))
		})
	})

	When("Serve command is called without config", func() {
		It("should fail to start and report error", func() {
			configPath = tmpDir.JoinPath("missing.yaml")

			errChan := make(chan error)
			go func() {
				errChan <- startServer(newServeCommand(), []string{})
			}()

			var startError error
			Eventually(errChan).Should(Receive(&startError))
			Expect(startError).Should(MatchError(ContainSubstring("unable to load configuration")))
		})
	})
})
