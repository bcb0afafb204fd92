package main

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"
)

const healthURL = "http://127.0.0.1:8080/api/health"

// waitHealthy опрашивает /api/health, пока сервер не ответит 200 или не истечёт timeout.
func waitHealthy(timeout time.Duration) bool {
	c := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		res, err := c.Get(healthURL)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return false
}

func main() {
	fmt.Println("Запуск сервиса аутентификации...")

	clientName := "authcli"
	if runtime.GOOS == "windows" {
		clientName = "authcli.exe"
	}
	// запускаем сервер на фоне
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	// собираем клиента
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/authcli")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		build.Run()
		// если не винда даём права
		if runtime.GOOS != "windows" {
			os.Chmod(clientName, 0755)
		}
	}

	if !waitHealthy(30 * time.Second) {
		fmt.Println("Сервер не ответил на /api/health, проверь DATABASE_DSN и логи")
	} else {
		fmt.Println("Сервер запущен")
	}

	// пишем как запускать агента
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\authcli.exe --help")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./authcli --help")
	}

	server.Wait()
}
